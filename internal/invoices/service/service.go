package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/erp-civi/erp-backend/internal/invoices/domain"
	"github.com/erp-civi/erp-backend/internal/invoices/repository"
)

// gstRate is the 18% GST applied to every invoice amount.
var gstRate = decimal.NewFromFloat(0.18)

type Service struct {
	repo *repository.Repository
}

func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll(ctx context.Context) []domain.Invoice {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Invoice, bool) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByProjectID(ctx context.Context, projectID string) []domain.Invoice {
	return s.repo.GetByProjectID(ctx, projectID)
}

// Create derives tax = amount × 18% and totalAmount = amount + tax.
func (s *Service) Create(ctx context.Context, in domain.CreateInput) domain.Invoice {
	amount := decimal.NewFromFloat(in.Amount)
	tax := amount.Mul(gstRate)

	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}

	return s.repo.Insert(ctx, domain.Invoice{
		ProjectID:     in.ProjectID,
		InvoiceNumber: in.InvoiceNumber,
		BillID:        in.BillID,
		InvoiceDate:   in.InvoiceDate,
		DueDate:       in.DueDate,
		Amount:        in.Amount,
		Tax:           tax.InexactFloat64(),
		TotalAmount:   amount.Add(tax).InexactFloat64(),
		Status:        status,
		ClientID:      in.ClientID,
	})
}

func (s *Service) Update(ctx context.Context, id string, in domain.UpdateInput) (domain.Invoice, bool) {
	return s.repo.Update(ctx, id, func(inv *domain.Invoice) {
		if in.InvoiceNumber != nil {
			inv.InvoiceNumber = *in.InvoiceNumber
		}
		if in.InvoiceDate != nil {
			inv.InvoiceDate = *in.InvoiceDate
		}
		if in.DueDate != nil {
			inv.DueDate = *in.DueDate
		}
		if in.Status != nil {
			inv.Status = *in.Status
		}
	})
}
