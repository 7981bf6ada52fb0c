package repository

import (
	"context"
	"time"

	"github.com/erp-civi/erp-backend/internal/boq/domain"
	"github.com/erp-civi/erp-backend/internal/storage"
)

type Repository struct {
	coll *storage.Collection[domain.Item]
}

func New(store *storage.Store) *Repository {
	return &Repository{
		coll: storage.NewCollection[domain.Item](store, "boq_items", "boq"),
	}
}

func (r *Repository) GetAll(ctx context.Context) []domain.Item {
	return r.coll.All(ctx)
}

func (r *Repository) GetByID(ctx context.Context, id string) (domain.Item, bool) {
	return r.coll.Get(ctx, id)
}

// GetByProjectID returns the BOQ lines of one project.
func (r *Repository) GetByProjectID(ctx context.Context, projectID string) []domain.Item {
	return r.coll.Filter(ctx, func(i domain.Item) bool {
		return i.ProjectID == projectID
	})
}

// Insert appends a fully-computed item; the service owns the derived fields.
func (r *Repository) Insert(ctx context.Context, item domain.Item) domain.Item {
	item.ID = r.coll.NewID()
	item.CreatedAt = time.Now().UTC()
	r.coll.Append(ctx, item)
	return item
}

func (r *Repository) Update(ctx context.Context, id string, apply func(*domain.Item)) (domain.Item, bool) {
	return r.coll.Update(ctx, id, apply)
}

func (r *Repository) Delete(ctx context.Context, id string) bool {
	r.coll.Remove(ctx, id)
	return true
}
