package vendors

import (
	"context"
	"time"

	"github.com/erp-civi/erp-backend/internal/storage"
)

type Repo struct {
	coll *storage.Collection[Vendor]
}

func NewRepo(store *storage.Store) *Repo {
	return &Repo{
		coll: storage.NewCollection[Vendor](store, "vendors", "vendor"),
	}
}

func (r *Repo) GetAll(ctx context.Context) []Vendor {
	return r.coll.All(ctx)
}

func (r *Repo) GetByID(ctx context.Context, id string) (Vendor, bool) {
	return r.coll.Get(ctx, id)
}

func (r *Repo) Create(ctx context.Context, in CreateInput) Vendor {
	v := Vendor{
		ID:          r.coll.NewID(),
		Name:        in.Name,
		Category:    in.Category,
		Email:       in.Email,
		Phone:       in.Phone,
		Address:     in.Address,
		BankAccount: in.BankAccount,
		GSTIN:       in.GSTIN,
		CreatedAt:   time.Now().UTC(),
	}
	r.coll.Append(ctx, v)
	return v
}

func (r *Repo) Update(ctx context.Context, id string, in UpdateInput) (Vendor, bool) {
	return r.coll.Update(ctx, id, func(v *Vendor) {
		if in.Name != nil {
			v.Name = *in.Name
		}
		if in.Category != nil {
			v.Category = *in.Category
		}
		if in.Email != nil {
			v.Email = *in.Email
		}
		if in.Phone != nil {
			v.Phone = *in.Phone
		}
		if in.Address != nil {
			v.Address = *in.Address
		}
		if in.BankAccount != nil {
			v.BankAccount = *in.BankAccount
		}
		if in.GSTIN != nil {
			v.GSTIN = *in.GSTIN
		}
	})
}

func (r *Repo) Delete(ctx context.Context, id string) bool {
	r.coll.Remove(ctx, id)
	return true
}
