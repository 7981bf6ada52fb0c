package repository

import (
	"context"
	"time"

	"github.com/erp-civi/erp-backend/internal/billing/domain"
	"github.com/erp-civi/erp-backend/internal/storage"
)

type Repository struct {
	coll *storage.Collection[domain.RunningBill]
}

func New(store *storage.Store) *Repository {
	return &Repository{
		coll: storage.NewCollection[domain.RunningBill](store, "running_bills", "bill"),
	}
}

func (r *Repository) GetAll(ctx context.Context) []domain.RunningBill {
	return r.coll.All(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.RunningBill, bool) {
	return r.coll.Get(ctx, id)
}

func (r *Repository) GetByProjectID(ctx context.Context, projectID string) []domain.RunningBill {
	return r.coll.Filter(ctx, func(b domain.RunningBill) bool {
		return b.ProjectID == projectID
	})
}

func (r *Repository) Insert(ctx context.Context, bill domain.RunningBill) domain.RunningBill {
	now := time.Now().UTC()
	bill.ID = r.coll.NewID()
	bill.CreatedAt = now
	bill.UpdatedAt = now
	r.coll.Append(ctx, bill)
	return bill
}

func (r *Repository) Update(ctx context.Context, id string, apply func(*domain.RunningBill)) (domain.RunningBill, bool) {
	return r.coll.Update(ctx, id, func(b *domain.RunningBill) {
		apply(b)
		b.UpdatedAt = time.Now().UTC()
	})
}
