package http

import (
	"github.com/gin-gonic/gin"

	"github.com/erp-civi/erp-backend/internal/auth/middleware"
	"github.com/erp-civi/erp-backend/internal/auth/service"
)

// Register attaches project routes to the given router group. Mutating
// routes are gated by the role permission table.
func (h *Handler) Register(rg *gin.RouterGroup, session *service.Session) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", middleware.RequireAction(session, "projects", "create"), h.create)
	rg.PATCH("/:id", middleware.RequireAction(session, "projects", "edit"), h.update)
	rg.DELETE("/:id", middleware.RequireAction(session, "projects", "delete"), h.delete)
}
