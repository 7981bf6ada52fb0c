package clients

import (
	"context"
	"time"

	"github.com/erp-civi/erp-backend/internal/storage"
)

type Repo struct {
	coll *storage.Collection[Client]
}

func NewRepo(store *storage.Store) *Repo {
	return &Repo{
		coll: storage.NewCollection[Client](store, "clients", "client"),
	}
}

func (r *Repo) GetAll(ctx context.Context) []Client {
	return r.coll.All(ctx)
}

func (r *Repo) GetByID(ctx context.Context, id string) (Client, bool) {
	return r.coll.Get(ctx, id)
}

func (r *Repo) Create(ctx context.Context, in CreateInput) Client {
	c := Client{
		ID:            r.coll.NewID(),
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		ZipCode:       in.ZipCode,
		GSTIN:         in.GSTIN,
		ContactPerson: in.ContactPerson,
		CreatedAt:     time.Now().UTC(),
	}
	r.coll.Append(ctx, c)
	return c
}

func (r *Repo) Update(ctx context.Context, id string, in UpdateInput) (Client, bool) {
	return r.coll.Update(ctx, id, func(c *Client) {
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Email != nil {
			c.Email = *in.Email
		}
		if in.Phone != nil {
			c.Phone = *in.Phone
		}
		if in.Address != nil {
			c.Address = *in.Address
		}
		if in.City != nil {
			c.City = *in.City
		}
		if in.State != nil {
			c.State = *in.State
		}
		if in.ZipCode != nil {
			c.ZipCode = *in.ZipCode
		}
		if in.GSTIN != nil {
			c.GSTIN = *in.GSTIN
		}
		if in.ContactPerson != nil {
			c.ContactPerson = *in.ContactPerson
		}
	})
}

// Delete always reports success, matching the tolerant no-op semantics of
// the other collections.
func (r *Repo) Delete(ctx context.Context, id string) bool {
	r.coll.Remove(ctx, id)
	return true
}
