package repository

import (
	"context"
	"time"

	"github.com/erp-civi/erp-backend/internal/invoices/domain"
	"github.com/erp-civi/erp-backend/internal/storage"
)

type Repository struct {
	coll *storage.Collection[domain.Invoice]
}

func New(store *storage.Store) *Repository {
	return &Repository{
		coll: storage.NewCollection[domain.Invoice](store, "invoices", "inv"),
	}
}

func (r *Repository) GetAll(ctx context.Context) []domain.Invoice {
	return r.coll.All(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.Invoice, bool) {
	return r.coll.Get(ctx, id)
}

func (r *Repository) GetByProjectID(ctx context.Context, projectID string) []domain.Invoice {
	return r.coll.Filter(ctx, func(i domain.Invoice) bool {
		return i.ProjectID == projectID
	})
}

func (r *Repository) Insert(ctx context.Context, inv domain.Invoice) domain.Invoice {
	inv.ID = r.coll.NewID()
	inv.CreatedAt = time.Now().UTC()
	r.coll.Append(ctx, inv)
	return inv
}

func (r *Repository) Update(ctx context.Context, id string, apply func(*domain.Invoice)) (domain.Invoice, bool) {
	return r.coll.Update(ctx, id, apply)
}
