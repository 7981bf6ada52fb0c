package inventory

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp-civi/erp-backend/internal/storage"
)

func setupTestRepo(t *testing.T) *Repo {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRepo(storage.NewStore(client, "erp_civi"))
}

func TestRepo_CreateMaterial(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	m := repo.CreateMaterial(ctx, CreateMaterialInput{
		Name:         "Cement (50kg bag)",
		Unit:         "bag",
		Category:     "cement",
		ReorderLevel: 500,
	})

	t.Run("material is stored", func(t *testing.T) {
		materials := repo.GetMaterials(ctx)
		require.Len(t, materials, 1)
		assert.Equal(t, m.ID, materials[0].ID)
	})

	t.Run("a zero stock record is created alongside", func(t *testing.T) {
		stock, ok := repo.GetStockByMaterial(ctx, m.ID)
		require.True(t, ok)
		assert.Equal(t, "stock_"+m.ID, stock.ID)
		assert.Equal(t, float64(0), stock.CurrentStock)
	})
}

func TestRepo_AdjustStock(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	m := repo.CreateMaterial(ctx, CreateMaterialInput{Name: "Steel Bars (10mm)", Unit: "ton", ReorderLevel: 50})

	stock, ok := repo.AdjustStock(ctx, m.ID, 75)
	require.True(t, ok)
	assert.Equal(t, float64(75), stock.CurrentStock)

	_, ok = repo.AdjustStock(ctx, "mat_missing", 10)
	assert.False(t, ok)
}

func TestRepo_LowStock(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	cement := repo.CreateMaterial(ctx, CreateMaterialInput{Name: "Cement", ReorderLevel: 500})
	steel := repo.CreateMaterial(ctx, CreateMaterialInput{Name: "Steel", ReorderLevel: 50})

	_, ok := repo.AdjustStock(ctx, steel.ID, 80)
	require.True(t, ok)

	low := repo.LowStock(ctx)
	require.Len(t, low, 1)
	assert.Equal(t, cement.ID, low[0].ID)
}
