package repository

import (
	"context"
	"time"

	"github.com/erp-civi/erp-backend/internal/projects/domain"
	"github.com/erp-civi/erp-backend/internal/storage"
)

// Repository persists the projects collection.
type Repository struct {
	coll *storage.Collection[domain.Project]
}

func New(store *storage.Store) *Repository {
	return &Repository{
		coll: storage.NewCollection[domain.Project](store, "projects", "proj"),
	}
}

// GetAll returns every project.
func (r *Repository) GetAll(ctx context.Context) []domain.Project {
	return r.coll.All(ctx)
}

// GetByID returns the project with the given id.
func (r *Repository) GetByID(ctx context.Context, id string) (domain.Project, bool) {
	return r.coll.Get(ctx, id)
}

// Create appends a new project with a fresh id and timestamps.
func (r *Repository) Create(ctx context.Context, in domain.CreateInput) domain.Project {
	now := time.Now().UTC()
	status := in.Status
	if status == "" {
		status = domain.StatusPlanning
	}

	p := domain.Project{
		ID:          r.coll.NewID(),
		Name:        in.Name,
		ClientID:    in.ClientID,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Status:      status,
		Location:    in.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.coll.Append(ctx, p)
	return p
}

// Update shallow-merges the set fields over the stored project and refreshes
// the update timestamp. Unknown ids write nothing.
func (r *Repository) Update(ctx context.Context, id string, in domain.UpdateInput) (domain.Project, bool) {
	return r.coll.Update(ctx, id, func(p *domain.Project) {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.ClientID != nil {
			p.ClientID = *in.ClientID
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.StartDate != nil {
			p.StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			p.EndDate = *in.EndDate
		}
		if in.Budget != nil {
			p.Budget = *in.Budget
		}
		if in.Status != nil {
			p.Status = *in.Status
		}
		if in.Location != nil {
			p.Location = *in.Location
		}
		p.UpdatedAt = time.Now().UTC()
	})
}

// Delete filters the project out of the collection. It reports success even
// when nothing matched.
func (r *Repository) Delete(ctx context.Context, id string) bool {
	r.coll.Remove(ctx, id)
	return true
}
