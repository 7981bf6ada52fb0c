package domain

import "time"

// Item is one priced line of a project's bill of quantities. TotalAmount is
// derived (quantity × rate) at write time and never re-validated on read.
type Item struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"projectId"`
	ItemName    string    `json:"itemName"`
	Description string    `json:"description,omitempty"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Rate        float64   `json:"rate"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (i Item) RecordID() string { return i.ID }

type CreateInput struct {
	ProjectID   string  `json:"projectId" binding:"required"`
	ItemName    string  `json:"itemName" binding:"required"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Rate        float64 `json:"rate"`
}

type UpdateInput struct {
	ItemName    *string  `json:"itemName"`
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Unit        *string  `json:"unit"`
	Rate        *float64 `json:"rate"`
}
