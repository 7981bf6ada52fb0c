package inventory

import (
	"context"
	"time"

	"github.com/erp-civi/erp-backend/internal/storage"
)

// Repo persists the materials catalogue and the per-material stock records.
type Repo struct {
	materials *storage.Collection[Material]
	stocks    *storage.Collection[Stock]
}

func NewRepo(store *storage.Store) *Repo {
	return &Repo{
		materials: storage.NewCollection[Material](store, "materials", "mat"),
		stocks:    storage.NewCollection[Stock](store, "material_stock", "stock"),
	}
}

func (r *Repo) GetMaterials(ctx context.Context) []Material {
	return r.materials.All(ctx)
}

func (r *Repo) GetStocks(ctx context.Context) []Stock {
	return r.stocks.All(ctx)
}

func (r *Repo) GetStockByMaterial(ctx context.Context, materialID string) (Stock, bool) {
	return r.stocks.Get(ctx, "stock_"+materialID)
}

// CreateMaterial stores a new material together with its zero-quantity stock
// record.
func (r *Repo) CreateMaterial(ctx context.Context, in CreateMaterialInput) Material {
	m := Material{
		ID:           r.materials.NewID(),
		Name:         in.Name,
		Description:  in.Description,
		Unit:         in.Unit,
		Category:     in.Category,
		ReorderLevel: in.ReorderLevel,
		CreatedAt:    time.Now().UTC(),
	}
	r.materials.Append(ctx, m)

	r.stocks.Append(ctx, Stock{
		ID:          "stock_" + m.ID,
		MaterialID:  m.ID,
		LastUpdated: time.Now().UTC(),
	})
	return m
}

// AdjustStock sets the current stock level of a material.
func (r *Repo) AdjustStock(ctx context.Context, materialID string, quantity float64) (Stock, bool) {
	return r.stocks.Update(ctx, "stock_"+materialID, func(s *Stock) {
		s.CurrentStock = quantity
		s.LastUpdated = time.Now().UTC()
	})
}

// LowStock lists the materials whose stock is below their reorder level.
func (r *Repo) LowStock(ctx context.Context) []Material {
	stocks := map[string]float64{}
	for _, s := range r.stocks.All(ctx) {
		stocks[s.MaterialID] = s.CurrentStock
	}

	low := []Material{}
	for _, m := range r.materials.All(ctx) {
		if stocks[m.ID] < m.ReorderLevel {
			low = append(low, m)
		}
	}
	return low
}
