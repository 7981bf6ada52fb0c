package equipment

import "time"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusInUse       Status = "in_use"
	StatusMaintenance Status = "maintenance"
	StatusRetired     Status = "retired"
)

type Equipment struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	SerialNumber  string    `json:"serialNumber,omitempty"`
	PurchaseDate  string    `json:"purchaseDate,omitempty"`
	PurchaseValue float64   `json:"purchaseValue,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (e Equipment) RecordID() string { return e.ID }

// Allocation assigns a piece of equipment to a project. An allocation with
// no deallocation date is the active one.
type Allocation struct {
	ID               string    `json:"id"`
	EquipmentID      string    `json:"equipmentId"`
	ProjectID        string    `json:"projectId"`
	AllocationDate   string    `json:"allocationDate"`
	DeallocationDate string    `json:"deallocationDate,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (a Allocation) RecordID() string { return a.ID }

type CreateInput struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	SerialNumber  string  `json:"serialNumber"`
	PurchaseDate  string  `json:"purchaseDate"`
	PurchaseValue float64 `json:"purchaseValue"`
	Status        Status  `json:"status"`
}

type UpdateInput struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	SerialNumber  *string  `json:"serialNumber"`
	PurchaseDate  *string  `json:"purchaseDate"`
	PurchaseValue *float64 `json:"purchaseValue"`
	Status        *Status  `json:"status"`
}

type AllocateInput struct {
	EquipmentID    string `json:"equipmentId" binding:"required"`
	ProjectID      string `json:"projectId" binding:"required"`
	AllocationDate string `json:"allocationDate"`
}
