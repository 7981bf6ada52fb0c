package vendors

import "time"

// Category classifies a vendor or subcontractor.
type Category string

const (
	CategoryLabor         Category = "labor"
	CategoryMaterial      Category = "material"
	CategoryEquipment     Category = "equipment"
	CategorySubcontractor Category = "subcontractor"
)

type Vendor struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    Category  `json:"category"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address,omitempty"`
	BankAccount string    `json:"bankAccount,omitempty"`
	GSTIN       string    `json:"gstin,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (v Vendor) RecordID() string { return v.ID }

type CreateInput struct {
	Name        string   `json:"name" binding:"required"`
	Category    Category `json:"category"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	BankAccount string   `json:"bankAccount"`
	GSTIN       string   `json:"gstin"`
}

type UpdateInput struct {
	Name        *string   `json:"name"`
	Category    *Category `json:"category"`
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Address     *string   `json:"address"`
	BankAccount *string   `json:"bankAccount"`
	GSTIN       *string   `json:"gstin"`
}
