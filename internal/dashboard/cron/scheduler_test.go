package cronjob

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billingdomain "github.com/erp-civi/erp-backend/internal/billing/domain"
	billingrepo "github.com/erp-civi/erp-backend/internal/billing/repository"
	"github.com/erp-civi/erp-backend/internal/clients"
	"github.com/erp-civi/erp-backend/internal/dashboard/service"
	invoicerepo "github.com/erp-civi/erp-backend/internal/invoices/repository"
	projectdomain "github.com/erp-civi/erp-backend/internal/projects/domain"
	projectrepo "github.com/erp-civi/erp-backend/internal/projects/repository"
	"github.com/erp-civi/erp-backend/internal/storage"
)

func TestScheduler_Capture(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := storage.NewStore(client, "erp_civi")
	projects := projectrepo.New(store)
	bills := billingrepo.New(store)
	ctx := context.Background()

	projects.Create(ctx, projectdomain.CreateInput{Name: "Highway Extension", Budget: 5000000})
	bills.Insert(ctx, billingdomain.RunningBill{BillAmount: 450000})

	svc := service.New(projects, bills, invoicerepo.New(store), clients.NewRepo(store))
	sched := NewScheduler(svc, store)

	_, ok := Latest(ctx, store)
	assert.False(t, ok, "no snapshot before the first capture")

	sched.capture()

	snap, ok := Latest(ctx, store)
	require.True(t, ok)
	assert.Equal(t, 1, snap.KPIs.TotalProjects)
	assert.InDelta(t, 450000, snap.KPIs.TotalBilled, 0.01)
	assert.False(t, snap.CapturedAt.IsZero())
}
