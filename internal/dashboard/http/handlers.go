package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cronjob "github.com/erp-civi/erp-backend/internal/dashboard/cron"
	"github.com/erp-civi/erp-backend/internal/dashboard/service"
	"github.com/erp-civi/erp-backend/internal/storage"
)

type Handler struct {
	svc   *service.Service
	store *storage.Store
}

func NewHandler(svc *service.Service, store *storage.Store) *Handler {
	return &Handler{svc: svc, store: store}
}

// Register attaches the read-only dashboard routes. Everything here is an
// aggregate over other modules' data.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/kpis", h.kpis)
	rg.GET("/kpis/snapshot", h.snapshot)
	rg.GET("/projects", h.projects)
	rg.GET("/billing", h.billing)
	rg.GET("/pending-payments", h.pendingPayments)
}

func (h *Handler) kpis(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "kpis": h.svc.KPIs(c.Request.Context())})
}

// snapshot serves the last nightly capture instead of recomputing.
func (h *Handler) snapshot(c *gin.Context) {
	snap, ok := cronjob.Latest(c.Request.Context(), h.store)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no snapshot captured yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "snapshot": snap})
}

func (h *Handler) projects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.svc.ProjectSummaries(c.Request.Context())})
}

func (h *Handler) billing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "summary": h.svc.BillingSummary(c.Request.Context())})
}

func (h *Handler) pendingPayments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "payments": h.svc.PendingPayments(c.Request.Context())})
}
