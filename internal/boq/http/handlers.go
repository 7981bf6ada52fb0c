package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp-civi/erp-backend/internal/auth/middleware"
	authservice "github.com/erp-civi/erp-backend/internal/auth/service"
	"github.com/erp-civi/erp-backend/internal/boq/domain"
	"github.com/erp-civi/erp-backend/internal/boq/service"
)

type Handler struct {
	svc *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register attaches BOQ routes to the given router group. Listing supports
// an optional project filter (?projectId=...).
func (h *Handler) Register(rg *gin.RouterGroup, session *authservice.Session) {
	rg.GET("", h.list)
	rg.POST("", middleware.RequireAction(session, "boq", "create"), h.create)
	rg.PATCH("/:id", middleware.RequireAction(session, "boq", "edit"), h.update)
	rg.DELETE("/:id", middleware.RequireAction(session, "boq", "delete"), h.delete)
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()
	if projectID := c.Query("projectId"); projectID != "" {
		c.JSON(http.StatusOK, gin.H{"ok": true, "items": h.svc.GetByProjectID(ctx, projectID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "items": h.svc.GetAll(ctx)})
}

func (h *Handler) create(c *gin.Context) {
	var in domain.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": h.svc.Create(c.Request.Context(), in)})
}

func (h *Handler) update(c *gin.Context) {
	var in domain.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	item, ok := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "boq item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "item": item})
}

func (h *Handler) delete(c *gin.Context) {
	h.svc.Delete(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
