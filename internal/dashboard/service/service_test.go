package service

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
	invoicedomain "github.com/erp-civi/erp-backend/internal/invoices/domain"
	invoicerepo "github.com/erp-civi/erp-backend/internal/invoices/repository"
	projectdomain "github.com/erp-civi/erp-backend/internal/projects/domain"
	projectrepo "github.com/erp-civi/erp-backend/internal/projects/repository"
	"github.com/erp-civi/erp-backend/internal/storage"
)

type fixtures struct {
	svc      *Service
	projects *projectrepo.Repository
	bills    *billingrepo.Repository
	invoices *invoicerepo.Repository
	clients  *clients.Repo
}

func setupTestService(t *testing.T) fixtures {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := storage.NewStore(client, "erp_civi")
	f := fixtures{
		projects: projectrepo.New(store),
		bills:    billingrepo.New(store),
		invoices: invoicerepo.New(store),
		clients:  clients.NewRepo(store),
	}
	f.svc = New(f.projects, f.bills, f.invoices, f.clients)
	return f
}

func TestService_KPIs(t *testing.T) {
	f := setupTestService(t)
	ctx := context.Background()

	ongoing := f.projects.Create(ctx, projectdomain.CreateInput{
		Name: "Highway Extension", Budget: 5000000, Status: projectdomain.StatusOngoing,
	})
	f.projects.Create(ctx, projectdomain.CreateInput{
		Name: "Bridge Repair", Budget: 2000000, Status: projectdomain.StatusCompleted,
	})
	f.projects.Create(ctx, projectdomain.CreateInput{Name: "Township Phase 2", Budget: 3000000})

	f.bills.Insert(ctx, billingdomain.RunningBill{ProjectID: ongoing.ID, BillAmount: 450000, Status: billingdomain.StatusApproved})
	f.bills.Insert(ctx, billingdomain.RunningBill{ProjectID: ongoing.ID, BillAmount: 150000, Status: billingdomain.StatusDraft})

	f.invoices.Insert(ctx, invoicedomain.Invoice{ProjectID: ongoing.ID, TotalAmount: 531000, Status: invoicedomain.StatusPaid})
	f.invoices.Insert(ctx, invoicedomain.Invoice{ProjectID: ongoing.ID, TotalAmount: 177000, Status: invoicedomain.StatusSent})

	kpis := f.svc.KPIs(ctx)

	assert.Equal(t, 3, kpis.TotalProjects)
	assert.Equal(t, 1, kpis.OngoingProjects)
	assert.Equal(t, 1, kpis.CompletedProjects)
	assert.InDelta(t, 10000000, kpis.TotalBudget, 0.01)
	assert.InDelta(t, 600000, kpis.TotalBilled, 0.01)
	assert.InDelta(t, 531000, kpis.PaidAmount, 0.01)
	assert.InDelta(t, 177000, kpis.PendingPayments, 0.01)
	// paid 531000 minus 60% of 600000 billed
	assert.InDelta(t, 171000, kpis.ProfitEstimate, 0.01)
}

func TestService_KPIs_ProfitNeverNegative(t *testing.T) {
	f := setupTestService(t)
	ctx := context.Background()

	p := f.projects.Create(ctx, projectdomain.CreateInput{Name: "Culvert Works", Budget: 500000})
	f.bills.Insert(ctx, billingdomain.RunningBill{ProjectID: p.ID, BillAmount: 400000})

	kpis := f.svc.KPIs(ctx)
	assert.Zero(t, kpis.ProfitEstimate, "nothing paid yet, estimate clamps at zero")
}

func TestService_ProjectSummaries(t *testing.T) {
	f := setupTestService(t)
	ctx := context.Background()

	p := f.projects.Create(ctx, projectdomain.CreateInput{Name: "Highway Extension", Budget: 5000000})
	other := f.projects.Create(ctx, projectdomain.CreateInput{Name: "Bridge Repair", Budget: 2000000})

	f.bills.Insert(ctx, billingdomain.RunningBill{ProjectID: p.ID, BillAmount: 495000})
	f.invoices.Insert(ctx, invoicedomain.Invoice{ProjectID: p.ID, TotalAmount: 531000, Status: invoicedomain.StatusPaid})
	f.invoices.Insert(ctx, invoicedomain.Invoice{ProjectID: p.ID, TotalAmount: 100000, Status: invoicedomain.StatusSent})

	summaries := f.svc.ProjectSummaries(ctx)
	require.Len(t, summaries, 2)

	byID := map[string]ProjectSummary{}
	for _, s := range summaries {
		byID[s.ProjectID] = s
	}

	sum := byID[p.ID]
	assert.InDelta(t, 495000, sum.Billed, 0.01)
	assert.InDelta(t, 631000, sum.Invoiced, 0.01)
	assert.InDelta(t, 531000, sum.Paid, 0.01)
	assert.InDelta(t, 100000, sum.Pending, 0.01)
	// (5000000 - 495000) / 5000000 * 100
	assert.InDelta(t, 90.1, sum.ProfitMargin, 0.01)

	empty := byID[other.ID]
	assert.Zero(t, empty.Billed)
	assert.InDelta(t, 100, empty.ProfitMargin, 0.01, "untouched budget is all margin")
}

func TestService_BillingSummary(t *testing.T) {
	f := setupTestService(t)
	ctx := context.Background()

	f.bills.Insert(ctx, billingdomain.RunningBill{BillAmount: 100000, Status: billingdomain.StatusDraft})
	f.bills.Insert(ctx, billingdomain.RunningBill{BillAmount: 200000, Status: billingdomain.StatusApproved})
	f.bills.Insert(ctx, billingdomain.RunningBill{BillAmount: 300000, Status: billingdomain.StatusApproved})

	summary := f.svc.BillingSummary(ctx)
	require.Len(t, summary, 4, "one row per workflow status, even empty ones")

	byStatus := map[string]BillingStatusSummary{}
	for _, s := range summary {
		byStatus[s.Status] = s
	}

	assert.Equal(t, 1, byStatus["draft"].Count)
	assert.Equal(t, 2, byStatus["approved"].Count)
	assert.InDelta(t, 500000, byStatus["approved"].Amount, 0.01)
	assert.Zero(t, byStatus["paid"].Count)
}

func TestService_PendingPayments(t *testing.T) {
	f := setupTestService(t)
	ctx := context.Background()

	c := f.clients.Create(ctx, clients.CreateInput{Name: "Metro Infra Ltd"})

	f.invoices.Insert(ctx, invoicedomain.Invoice{
		InvoiceNumber: "INV-2024-001", ClientID: c.ID, TotalAmount: 531000, Status: invoicedomain.StatusSent, DueDate: "2024-04-15",
	})
	f.invoices.Insert(ctx, invoicedomain.Invoice{
		InvoiceNumber: "INV-2024-002", ClientID: "client_missing", TotalAmount: 90000, Status: invoicedomain.StatusOverdue,
	})
	f.invoices.Insert(ctx, invoicedomain.Invoice{
		InvoiceNumber: "INV-2024-003", ClientID: c.ID, TotalAmount: 10000, Status: invoicedomain.StatusPaid,
	})

	payments := f.svc.PendingPayments(ctx)
	require.Len(t, payments, 2, "paid invoices are excluded")

	byNumber := map[string]PendingPayment{}
	for _, p := range payments {
		byNumber[p.InvoiceNumber] = p
	}

	assert.Equal(t, "Metro Infra Ltd", byNumber["INV-2024-001"].ClientName)
	assert.Equal(t, "2024-04-15", byNumber["INV-2024-001"].DueDate)
	assert.Equal(t, "Unknown", byNumber["INV-2024-002"].ClientName, "dangling client reference falls back")
}
