package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/erp-civi/erp-backend/internal/boq/domain"
	"github.com/erp-civi/erp-backend/internal/boq/repository"
)

// Service owns the derived money fields of BOQ items.
type Service struct {
	repo *repository.Repository
}

func New(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

// lineTotal computes quantity × rate without float drift.
func lineTotal(quantity, rate float64) float64 {
	total := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(rate))
	return total.InexactFloat64()
}

func (s *Service) GetAll(ctx context.Context) []domain.Item {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByProjectID(ctx context.Context, projectID string) []domain.Item {
	return s.repo.GetByProjectID(ctx, projectID)
}

// Create stores a new BOQ line with its total computed from quantity × rate.
func (s *Service) Create(ctx context.Context, in domain.CreateInput) domain.Item {
	return s.repo.Insert(ctx, domain.Item{
		ProjectID:   in.ProjectID,
		ItemName:    in.ItemName,
		Description: in.Description,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Rate:        in.Rate,
		TotalAmount: lineTotal(in.Quantity, in.Rate),
	})
}

// Update merges the supplied fields and recomputes the total whenever
// quantity or rate changed.
func (s *Service) Update(ctx context.Context, id string, in domain.UpdateInput) (domain.Item, bool) {
	return s.repo.Update(ctx, id, func(item *domain.Item) {
		if in.ItemName != nil {
			item.ItemName = *in.ItemName
		}
		if in.Description != nil {
			item.Description = *in.Description
		}
		if in.Unit != nil {
			item.Unit = *in.Unit
		}
		if in.Quantity != nil {
			item.Quantity = *in.Quantity
		}
		if in.Rate != nil {
			item.Rate = *in.Rate
		}
		if in.Quantity != nil || in.Rate != nil {
			item.TotalAmount = lineTotal(item.Quantity, item.Rate)
		}
	})
}

func (s *Service) Delete(ctx context.Context, id string) bool {
	return s.repo.Delete(ctx, id)
}
