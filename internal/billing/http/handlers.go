package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp-civi/erp-backend/internal/auth/middleware"
	authservice "github.com/erp-civi/erp-backend/internal/auth/service"
	"github.com/erp-civi/erp-backend/internal/billing/domain"
	"github.com/erp-civi/erp-backend/internal/billing/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches running-bill routes. Bills are never deleted; they only
// move through the draft → submitted → approved → paid workflow.
func (h *Handler) Register(rg *gin.RouterGroup, session *authservice.Session) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", middleware.RequireAction(session, "billing", "create"), h.create)
	rg.PATCH("/:id", middleware.RequireAction(session, "billing", "edit"), h.update)
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()
	if projectID := c.Query("projectId"); projectID != "" {
		c.JSON(http.StatusOK, gin.H{"ok": true, "bills": h.svc.GetByProjectID(ctx, projectID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "bills": h.svc.GetAll(ctx)})
}

func (h *Handler) get(c *gin.Context) {
	bill, ok := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "bill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "bill": bill})
}

func (h *Handler) create(c *gin.Context) {
	var in domain.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "bill": h.svc.Create(c.Request.Context(), in)})
}

func (h *Handler) update(c *gin.Context) {
	var in domain.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	bill, ok := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "bill not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "bill": bill})
}
