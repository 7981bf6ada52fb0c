package domain

import "time"

type Status string

const (
	StatusDraft   Status = "draft"
	StatusSent    Status = "sent"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
)

// Invoice bills a client for a running bill. Tax and TotalAmount are derived
// from the amount at creation time.
type Invoice struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"projectId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	BillID        string    `json:"billId"`
	InvoiceDate   string    `json:"invoiceDate"`
	DueDate       string    `json:"dueDate"`
	Amount        float64   `json:"amount"`
	Tax           float64   `json:"tax,omitempty"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        Status    `json:"status"`
	ClientID      string    `json:"clientId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (i Invoice) RecordID() string { return i.ID }

type CreateInput struct {
	ProjectID     string  `json:"projectId" binding:"required"`
	InvoiceNumber string  `json:"invoiceNumber"`
	BillID        string  `json:"billId"`
	InvoiceDate   string  `json:"invoiceDate"`
	DueDate       string  `json:"dueDate"`
	Amount        float64 `json:"amount"`
	Status        Status  `json:"status"`
	ClientID      string  `json:"clientId"`
}

type UpdateInput struct {
	InvoiceNumber *string `json:"invoiceNumber"`
	InvoiceDate   *string `json:"invoiceDate"`
	DueDate       *string `json:"dueDate"`
	Status        *Status `json:"status"`
}
