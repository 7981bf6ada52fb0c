package inventory

import "time"

// Material is a catalogued construction material with a reorder threshold.
type Material struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Unit         string    `json:"unit"`
	Category     string    `json:"category"`
	ReorderLevel float64   `json:"reorderLevel"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (m Material) RecordID() string { return m.ID }

// Stock tracks the current quantity of one material. By convention there is
// exactly one stock record per material, keyed "stock_<materialId>".
type Stock struct {
	ID           string    `json:"id"`
	MaterialID   string    `json:"materialId"`
	CurrentStock float64   `json:"currentStock"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

func (s Stock) RecordID() string { return s.ID }

type CreateMaterialInput struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Unit         string  `json:"unit"`
	Category     string  `json:"category"`
	ReorderLevel float64 `json:"reorderLevel"`
}

type AdjustStockInput struct {
	CurrentStock float64 `json:"currentStock"`
}
