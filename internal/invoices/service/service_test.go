package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-civi/erp-backend/internal/invoices/domain"
	"github.com/erp-civi/erp-backend/internal/invoices/repository"
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

	inv := svc.Create(ctx, domain.CreateInput{
		ProjectID:     "proj_1",
		InvoiceNumber: "INV/2024/001",
		BillID:        "bill_1",
		Amount:        450000,
		ClientID:      "client_1",
	})

	assert.Equal(t, float64(81000), inv.Tax)
	assert.Equal(t, float64(531000), inv.TotalAmount)
	assert.Equal(t, domain.StatusDraft, inv.Status)
	assert.NotEmpty(t, inv.ID)
	assert.False(t, inv.CreatedAt.IsZero())
}

func TestService_Update(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	inv := svc.Create(ctx, domain.CreateInput{ProjectID: "proj_1", Amount: 1000})

	t.Run("marks an invoice paid", func(t *testing.T) {
		status := domain.StatusPaid
		updated, ok := svc.Update(ctx, inv.ID, domain.UpdateInput{Status: &status})
		require.True(t, ok)
		assert.Equal(t, domain.StatusPaid, updated.Status)
		assert.Equal(t, float64(1180), updated.TotalAmount)
	})

	t.Run("unknown id is rejected without a write", func(t *testing.T) {
		status := domain.StatusOverdue
		_, ok := svc.Update(ctx, "inv_missing", domain.UpdateInput{Status: &status})
		assert.False(t, ok)
	})
}
