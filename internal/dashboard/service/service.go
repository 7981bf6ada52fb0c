package service

import (
	"context"

	"github.com/shopspring/decimal"

	billingdomain "github.com/erp-civi/erp-backend/internal/billing/domain"
	billingrepo "github.com/erp-civi/erp-backend/internal/billing/repository"
	"github.com/erp-civi/erp-backend/internal/clients"
	invoicedomain "github.com/erp-civi/erp-backend/internal/invoices/domain"
	invoicerepo "github.com/erp-civi/erp-backend/internal/invoices/repository"
	projectdomain "github.com/erp-civi/erp-backend/internal/projects/domain"
	projectrepo "github.com/erp-civi/erp-backend/internal/projects/repository"
)

// costRatio treats 60% of the billed amount as cost when estimating profit.
// This is a placeholder carried over from the dashboard it replaces, not a
// verified business rule.
const costRatio = 0.6

// KPIs are the headline dashboard numbers.
type KPIs struct {
	TotalProjects     int     `json:"totalProjects"`
	OngoingProjects   int     `json:"ongoingProjects"`
	CompletedProjects int     `json:"completedProjects"`
	TotalBudget       float64 `json:"totalBudget"`
	TotalBilled       float64 `json:"totalBilled"`
	PendingPayments   float64 `json:"pendingPayments"`
	PaidAmount        float64 `json:"paidAmount"`
	ProfitEstimate    float64 `json:"profitEstimate"`
}

// ProjectSummary aggregates billing and payment totals for one project.
type ProjectSummary struct {
	ProjectID    string  `json:"projectId"`
	ProjectName  string  `json:"projectName"`
	Budget       float64 `json:"budget"`
	Billed       float64 `json:"billed"`
	Invoiced     float64 `json:"invoiced"`
	Paid         float64 `json:"paid"`
	Pending      float64 `json:"pending"`
	ProfitMargin float64 `json:"profitMargin"`
}

// BillingStatusSummary counts bills per workflow status.
type BillingStatusSummary struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// PendingPayment is an unpaid invoice with its client resolved.
type PendingPayment struct {
	InvoiceNumber string  `json:"invoiceNumber"`
	ClientName    string  `json:"clientName"`
	Amount        float64 `json:"amount"`
	DueDate       string  `json:"dueDate"`
	Status        string  `json:"status"`
}

// Service computes reporting aggregates over the other modules' data.
type Service struct {
	projects *projectrepo.Repository
	bills    *billingrepo.Repository
	invoices *invoicerepo.Repository
	clients  *clients.Repo
}

func New(projects *projectrepo.Repository, bills *billingrepo.Repository, invoices *invoicerepo.Repository, clientRepo *clients.Repo) *Service {
	return &Service{
		projects: projects,
		bills:    bills,
		invoices: invoices,
		clients:  clientRepo,
	}
}

// KPIs computes the dashboard headline numbers from the live collections.
func (s *Service) KPIs(ctx context.Context) KPIs {
	projects := s.projects.GetAll(ctx)
	bills := s.bills.GetAll(ctx)
	invoices := s.invoices.GetAll(ctx)

	out := KPIs{TotalProjects: len(projects)}
	for _, p := range projects {
		out.TotalBudget += p.Budget
		switch p.Status {
		case projectdomain.StatusOngoing:
			out.OngoingProjects++
		case projectdomain.StatusCompleted:
			out.CompletedProjects++
		}
	}

	for _, b := range bills {
		out.TotalBilled += b.BillAmount
	}

	for _, inv := range invoices {
		if inv.Status == invoicedomain.StatusPaid {
			out.PaidAmount += inv.TotalAmount
		} else {
			out.PendingPayments += inv.TotalAmount
		}
	}

	profit := decimal.NewFromFloat(out.PaidAmount).
		Sub(decimal.NewFromFloat(out.TotalBilled).Mul(decimal.NewFromFloat(costRatio)))
	if profit.IsNegative() {
		profit = decimal.Zero
	}
	out.ProfitEstimate = profit.InexactFloat64()

	return out
}

// ProjectSummaries aggregates billed/invoiced/paid totals per project.
func (s *Service) ProjectSummaries(ctx context.Context) []ProjectSummary {
	bills := s.bills.GetAll(ctx)
	invoices := s.invoices.GetAll(ctx)

	out := []ProjectSummary{}
	for _, p := range s.projects.GetAll(ctx) {
		sum := ProjectSummary{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Budget:      p.Budget,
		}

		for _, b := range bills {
			if b.ProjectID == p.ID {
				sum.Billed += b.BillAmount
			}
		}
		for _, inv := range invoices {
			if inv.ProjectID != p.ID {
				continue
			}
			sum.Invoiced += inv.TotalAmount
			if inv.Status == invoicedomain.StatusPaid {
				sum.Paid += inv.TotalAmount
			}
		}
		sum.Pending = sum.Invoiced - sum.Paid

		if p.Budget > 0 {
			margin := decimal.NewFromFloat(p.Budget).
				Sub(decimal.NewFromFloat(sum.Billed)).
				Div(decimal.NewFromFloat(p.Budget)).
				Mul(decimal.NewFromInt(100))
			sum.ProfitMargin = margin.Round(2).InexactFloat64()
		}

		out = append(out, sum)
	}
	return out
}

// BillingSummary counts bills and amounts per workflow status.
func (s *Service) BillingSummary(ctx context.Context) []BillingStatusSummary {
	bills := s.bills.GetAll(ctx)

	statuses := []billingdomain.Status{
		billingdomain.StatusDraft,
		billingdomain.StatusSubmitted,
		billingdomain.StatusApproved,
		billingdomain.StatusPaid,
	}

	out := make([]BillingStatusSummary, 0, len(statuses))
	for _, status := range statuses {
		sum := BillingStatusSummary{Status: string(status)}
		for _, b := range bills {
			if b.Status == status {
				sum.Count++
				sum.Amount += b.BillAmount
			}
		}
		out = append(out, sum)
	}
	return out
}

// PendingPayments lists unpaid invoices with their client names resolved.
func (s *Service) PendingPayments(ctx context.Context) []PendingPayment {
	clientNames := map[string]string{}
	for _, c := range s.clients.GetAll(ctx) {
		clientNames[c.ID] = c.Name
	}

	out := []PendingPayment{}
	for _, inv := range s.invoices.GetAll(ctx) {
		if inv.Status == invoicedomain.StatusPaid {
			continue
		}

		name := clientNames[inv.ClientID]
		if name == "" {
			name = "Unknown"
		}
		out = append(out, PendingPayment{
			InvoiceNumber: inv.InvoiceNumber,
			ClientName:    name,
			Amount:        inv.TotalAmount,
			DueDate:       inv.DueDate,
			Status:        string(inv.Status),
		})
	}
	return out
}
