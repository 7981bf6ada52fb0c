package domain

import "time"

// Status is the running-bill workflow state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusPaid      Status = "paid"
)

// Line captures a BOQ item reference with the quantity, rate and total at
// bill time. The snapshot is intentional: later BOQ edits must not change an
// issued bill.
type Line struct {
	ItemID   string  `json:"itemId"`
	Quantity float64 `json:"quantity"`
	Rate     float64 `json:"rate"`
	Total    float64 `json:"total"`
}

// RunningBill is an interim progress bill against a project's BOQ, with a
// retention percentage withheld until completion. RetentionAmount and
// Subtotal are derived at creation time.
type RunningBill struct {
	ID                  string    `json:"id"`
	ProjectID           string    `json:"projectId"`
	BillNumber          string    `json:"billNumber"`
	BillDate            string    `json:"billDate"`
	BOQItems            []Line    `json:"boqItems"`
	Subtotal            float64   `json:"subtotal"`
	RetentionPercentage float64   `json:"retentionPercentage"`
	RetentionAmount     float64   `json:"retentionAmount"`
	BillAmount          float64   `json:"billAmount"`
	Status              Status    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (b RunningBill) RecordID() string { return b.ID }

type CreateInput struct {
	ProjectID           string   `json:"projectId" binding:"required"`
	BillNumber          string   `json:"billNumber"`
	BillDate            string   `json:"billDate"`
	BOQItems            []Line   `json:"boqItems"`
	BillAmount          float64  `json:"billAmount"`
	RetentionPercentage *float64 `json:"retentionPercentage"`
	Status              Status   `json:"status"`
}

type UpdateInput struct {
	BillNumber *string `json:"billNumber"`
	BillDate   *string `json:"billDate"`
	Status     *Status `json:"status"`
}
