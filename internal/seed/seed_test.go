package seed

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projectdomain "github.com/erp-civi/erp-backend/internal/projects/domain"
	projectrepo "github.com/erp-civi/erp-backend/internal/projects/repository"
	"github.com/erp-civi/erp-backend/internal/storage"
)

func setupTestStore(t *testing.T) *storage.Store {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return storage.NewStore(client, "erp_civi")
}

func TestInitialize(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	Initialize(ctx, store)

	var projects []projectdomain.Project
	require.True(t, store.Get(ctx, "projects", &projects))
	require.Len(t, projects, 4)
	assert.Equal(t, "proj_1", projects[0].ID)
	assert.Equal(t, projectdomain.StatusCompleted, projects[3].Status)

	for _, key := range []string{
		"clients", "boq_items", "running_bills", "invoices",
		"vendors", "materials", "material_stock",
		"equipment", "equipment_allocations", "daily_reports",
	} {
		var raw []map[string]any
		assert.True(t, store.Get(ctx, key, &raw), "collection %q should be seeded", key)
		assert.NotEmpty(t, raw, "collection %q should not be empty", key)
	}
}

func TestInitialize_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	repo := projectrepo.New(store)
	created := repo.Create(ctx, projectdomain.CreateInput{Name: "Pre-existing Project", Budget: 100})

	Initialize(ctx, store)

	projects := repo.GetAll(ctx)
	require.Len(t, projects, 1, "seeding must not touch a populated store")
	assert.Equal(t, created.ID, projects[0].ID)

	var seededClients []map[string]any
	assert.False(t, store.Get(ctx, "clients", &seededClients), "no other collection is seeded either")
}

func TestInitialize_StockMatchesReorderLevels(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	Initialize(ctx, store)

	var stocks []struct {
		MaterialID   string  `json:"materialId"`
		CurrentStock float64 `json:"currentStock"`
	}
	require.True(t, store.Get(ctx, "material_stock", &stocks))
	require.Len(t, stocks, 4)

	byMaterial := map[string]float64{}
	for _, s := range stocks {
		byMaterial[s.MaterialID] = s.CurrentStock
	}
	assert.Equal(t, 750.0, byMaterial["mat_1"], "cement stock is 1.5x its reorder level of 500")
	assert.Equal(t, 75.0, byMaterial["mat_2"])
}
