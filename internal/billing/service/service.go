package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/erp-civi/erp-backend/internal/billing/domain"
	"github.com/erp-civi/erp-backend/internal/billing/repository"
)

// defaultRetentionPct is withheld when the caller does not specify one.
const defaultRetentionPct = 10

// Service derives the retention fields of running bills.
type Service struct {
	repo *repository.Repository
}

func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetAll(ctx context.Context) []domain.RunningBill {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.RunningBill, bool) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByProjectID(ctx context.Context, projectID string) []domain.RunningBill {
	return s.repo.GetByProjectID(ctx, projectID)
}

// Create computes retentionAmount = billAmount × pct/100 and
// subtotal = billAmount + retentionAmount, then stores the bill. The
// subtotal formula mirrors the billing screen it replaces.
func (s *Service) Create(ctx context.Context, in domain.CreateInput) domain.RunningBill {
	pct := float64(defaultRetentionPct)
	if in.RetentionPercentage != nil {
		pct = *in.RetentionPercentage
	}

	amount := decimal.NewFromFloat(in.BillAmount)
	retention := amount.Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100))
	subtotal := amount.Add(retention)

	status := in.Status
	if status == "" {
		status = domain.StatusDraft
	}

	lines := make([]domain.Line, 0, len(in.BOQItems))
	for _, line := range in.BOQItems {
		if line.Total == 0 {
			line.Total = decimal.NewFromFloat(line.Quantity).
				Mul(decimal.NewFromFloat(line.Rate)).InexactFloat64()
		}
		lines = append(lines, line)
	}

	return s.repo.Insert(ctx, domain.RunningBill{
		ProjectID:           in.ProjectID,
		BillNumber:          in.BillNumber,
		BillDate:            in.BillDate,
		BOQItems:            lines,
		Subtotal:            subtotal.InexactFloat64(),
		RetentionPercentage: pct,
		RetentionAmount:     retention.InexactFloat64(),
		BillAmount:          in.BillAmount,
		Status:              status,
	})
}

// Update merges the supplied fields; money fields are fixed at creation.
func (s *Service) Update(ctx context.Context, id string, in domain.UpdateInput) (domain.RunningBill, bool) {
	return s.repo.Update(ctx, id, func(b *domain.RunningBill) {
		if in.BillNumber != nil {
			b.BillNumber = *in.BillNumber
		}
		if in.BillDate != nil {
			b.BillDate = *in.BillDate
		}
		if in.Status != nil {
			b.Status = *in.Status
		}
	})
}
