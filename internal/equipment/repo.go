package equipment

import (
	"context"
	"time"

	"github.com/erp-civi/erp-backend/internal/storage"
)

type Repo struct {
	equipment   *storage.Collection[Equipment]
	allocations *storage.Collection[Allocation]
}

func NewRepo(store *storage.Store) *Repo {
	return &Repo{
		equipment:   storage.NewCollection[Equipment](store, "equipment", "equip"),
		allocations: storage.NewCollection[Allocation](store, "equipment_allocations", "alloc"),
	}
}

func (r *Repo) GetAll(ctx context.Context) []Equipment {
	return r.equipment.All(ctx)
}

func (r *Repo) GetByID(ctx context.Context, id string) (Equipment, bool) {
	return r.equipment.Get(ctx, id)
}

func (r *Repo) GetAllocations(ctx context.Context) []Allocation {
	return r.allocations.All(ctx)
}

// ActiveAllocation returns the allocation of a piece of equipment that has
// not been deallocated yet.
func (r *Repo) ActiveAllocation(ctx context.Context, equipmentID string) (Allocation, bool) {
	for _, a := range r.allocations.All(ctx) {
		if a.EquipmentID == equipmentID && a.DeallocationDate == "" {
			return a, true
		}
	}
	return Allocation{}, false
}

func (r *Repo) Create(ctx context.Context, in CreateInput) Equipment {
	status := in.Status
	if status == "" {
		status = StatusAvailable
	}

	e := Equipment{
		ID:            r.equipment.NewID(),
		Name:          in.Name,
		Category:      in.Category,
		SerialNumber:  in.SerialNumber,
		PurchaseDate:  in.PurchaseDate,
		PurchaseValue: in.PurchaseValue,
		Status:        status,
		CreatedAt:     time.Now().UTC(),
	}
	r.equipment.Append(ctx, e)
	return e
}

func (r *Repo) Update(ctx context.Context, id string, in UpdateInput) (Equipment, bool) {
	return r.equipment.Update(ctx, id, func(e *Equipment) {
		if in.Name != nil {
			e.Name = *in.Name
		}
		if in.Category != nil {
			e.Category = *in.Category
		}
		if in.SerialNumber != nil {
			e.SerialNumber = *in.SerialNumber
		}
		if in.PurchaseDate != nil {
			e.PurchaseDate = *in.PurchaseDate
		}
		if in.PurchaseValue != nil {
			e.PurchaseValue = *in.PurchaseValue
		}
		if in.Status != nil {
			e.Status = *in.Status
		}
	})
}

// Allocate assigns equipment to a project and marks it in use.
func (r *Repo) Allocate(ctx context.Context, in AllocateInput) (Allocation, bool) {
	if _, ok := r.equipment.Get(ctx, in.EquipmentID); !ok {
		return Allocation{}, false
	}

	a := Allocation{
		ID:             r.allocations.NewID(),
		EquipmentID:    in.EquipmentID,
		ProjectID:      in.ProjectID,
		AllocationDate: in.AllocationDate,
		CreatedAt:      time.Now().UTC(),
	}
	r.allocations.Append(ctx, a)

	r.equipment.Update(ctx, in.EquipmentID, func(e *Equipment) {
		e.Status = StatusInUse
	})
	return a, true
}

// Deallocate stamps the active allocation's deallocation date and returns
// the equipment to the available pool.
func (r *Repo) Deallocate(ctx context.Context, equipmentID, date string) (Allocation, bool) {
	active, ok := r.ActiveAllocation(ctx, equipmentID)
	if !ok {
		return Allocation{}, false
	}

	updated, ok := r.allocations.Update(ctx, active.ID, func(a *Allocation) {
		a.DeallocationDate = date
	})
	if !ok {
		return Allocation{}, false
	}

	r.equipment.Update(ctx, equipmentID, func(e *Equipment) {
		e.Status = StatusAvailable
	})
	return updated, true
}
