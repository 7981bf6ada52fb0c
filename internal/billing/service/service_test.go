package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-civi/erp-backend/internal/billing/domain"
	"github.com/erp-civi/erp-backend/internal/billing/repository"
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

	t.Run("derives retention and subtotal", func(t *testing.T) {
		pct := 10.0
		bill := svc.Create(ctx, domain.CreateInput{
			ProjectID:           "proj_1",
			BillNumber:          "RB/2024/001",
			BillAmount:          450000,
			RetentionPercentage: &pct,
		})

		assert.Equal(t, float64(45000), bill.RetentionAmount)
		assert.Equal(t, float64(495000), bill.Subtotal)
		assert.Equal(t, float64(450000), bill.BillAmount)
		assert.Equal(t, domain.StatusDraft, bill.Status)
	})

	t.Run("retention defaults to ten percent", func(t *testing.T) {
		bill := svc.Create(ctx, domain.CreateInput{
			ProjectID:  "proj_1",
			BillAmount: 1000,
		})
		assert.Equal(t, float64(10), bill.RetentionPercentage)
		assert.Equal(t, float64(100), bill.RetentionAmount)
	})

	t.Run("line totals are captured at bill time", func(t *testing.T) {
		bill := svc.Create(ctx, domain.CreateInput{
			ProjectID:  "proj_1",
			BillAmount: 500000,
			BOQItems: []domain.Line{
				{ItemID: "boq_1", Quantity: 1000, Rate: 500},
			},
		})
		require.Len(t, bill.BOQItems, 1)
		assert.Equal(t, float64(500000), bill.BOQItems[0].Total)
	})
}

func TestService_Update(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	bill := svc.Create(ctx, domain.CreateInput{ProjectID: "proj_1", BillAmount: 450000})

	t.Run("status moves through the workflow", func(t *testing.T) {
		status := domain.StatusApproved
		updated, ok := svc.Update(ctx, bill.ID, domain.UpdateInput{Status: &status})
		require.True(t, ok)
		assert.Equal(t, domain.StatusApproved, updated.Status)
		// Money fields are untouched by updates.
		assert.Equal(t, float64(45000), updated.RetentionAmount)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		before := svc.GetAll(ctx)
		status := domain.StatusPaid
		_, ok := svc.Update(ctx, "bill_missing", domain.UpdateInput{Status: &status})
		assert.False(t, ok)
		assert.Equal(t, before, svc.GetAll(ctx))
	})
}
