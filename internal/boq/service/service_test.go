package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-civi/erp-backend/internal/boq/domain"
	"github.com/erp-civi/erp-backend/internal/boq/repository"
	"github.com/erp-civi/erp-backend/internal/storage"
)

func setupTestService(t *testing.T) *Service {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(repository.New(storage.NewStore(client, "erp_civi")))
}

func TestService_Create(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	t.Run("computes total from quantity and rate", func(t *testing.T) {
		item := svc.Create(ctx, domain.CreateInput{
			ProjectID: "proj_1",
			ItemName:  "Excavation & Foundation",
			Quantity:  5000,
			Unit:      "cum",
			Rate:      500,
		})

		assert.Equal(t, float64(2500000), item.TotalAmount)
		assert.NotEmpty(t, item.ID)
	})

	t.Run("fractional quantities do not drift", func(t *testing.T) {
		item := svc.Create(ctx, domain.CreateInput{
			ProjectID: "proj_1",
			ItemName:  "Waterproofing",
			Quantity:  0.1,
			Unit:      "sqm",
			Rate:      0.2,
		})
		assert.Equal(t, 0.02, item.TotalAmount)
	})
}

func TestService_Update(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	item := svc.Create(ctx, domain.CreateInput{
		ProjectID: "proj_2",
		ItemName:  "Pile Foundation",
		Quantity:  250,
		Unit:      "no",
		Rate:      100000,
	})
	require.Equal(t, float64(25000000), item.TotalAmount)

	t.Run("recomputes total when quantity changes", func(t *testing.T) {
		qty := 300.0
		updated, ok := svc.Update(ctx, item.ID, domain.UpdateInput{Quantity: &qty})
		require.True(t, ok)
		assert.Equal(t, float64(30000000), updated.TotalAmount)
	})

	t.Run("keeps total when only the name changes", func(t *testing.T) {
		name := "Pile Foundation (revised)"
		updated, ok := svc.Update(ctx, item.ID, domain.UpdateInput{ItemName: &name})
		require.True(t, ok)
		assert.Equal(t, float64(30000000), updated.TotalAmount)
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		name := "never"
		_, ok := svc.Update(ctx, "boq_missing", domain.UpdateInput{ItemName: &name})
		assert.False(t, ok)
	})
}

func TestService_ProjectFilter(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	svc.Create(ctx, domain.CreateInput{ProjectID: "proj_1", ItemName: "A", Quantity: 1, Rate: 1})
	svc.Create(ctx, domain.CreateInput{ProjectID: "proj_1", ItemName: "B", Quantity: 1, Rate: 1})
	svc.Create(ctx, domain.CreateInput{ProjectID: "proj_2", ItemName: "C", Quantity: 1, Rate: 1})

	assert.Len(t, svc.GetByProjectID(ctx, "proj_1"), 2)
	assert.Len(t, svc.GetByProjectID(ctx, "proj_2"), 1)
	assert.Empty(t, svc.GetByProjectID(ctx, "proj_3"))
}
