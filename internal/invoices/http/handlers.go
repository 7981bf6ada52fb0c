package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp-civi/erp-backend/internal/auth/middleware"
	authservice "github.com/erp-civi/erp-backend/internal/auth/service"
	"github.com/erp-civi/erp-backend/internal/invoices/domain"
	"github.com/erp-civi/erp-backend/internal/invoices/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(rg *gin.RouterGroup, session *authservice.Session) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", middleware.RequireAction(session, "invoices", "create"), h.create)
	rg.PATCH("/:id", middleware.RequireAction(session, "invoices", "edit"), h.update)
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()
	if projectID := c.Query("projectId"); projectID != "" {
		c.JSON(http.StatusOK, gin.H{"ok": true, "invoices": h.svc.GetByProjectID(ctx, projectID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "invoices": h.svc.GetAll(ctx)})
}

func (h *Handler) get(c *gin.Context) {
	inv, ok := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "invoice": inv})
}

func (h *Handler) create(c *gin.Context) {
	var in domain.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "invoice": h.svc.Create(c.Request.Context(), in)})
}

func (h *Handler) update(c *gin.Context) {
	var in domain.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	inv, ok := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "invoice not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "invoice": inv})
}
