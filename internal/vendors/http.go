package vendors

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp-civi/erp-backend/internal/auth/middleware"
	"github.com/erp-civi/erp-backend/internal/auth/service"
)

// Register attaches vendor routes to the given router group.
func Register(rg *gin.RouterGroup, repo *Repo, session *service.Session) {
	rg.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "vendors": repo.GetAll(c.Request.Context())})
	})

	rg.POST("", middleware.RequireAction(session, "vendors", "create"), func(c *gin.Context) {
		var in CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "vendor": repo.Create(c.Request.Context(), in)})
	})

	rg.PATCH("/:id", middleware.RequireAction(session, "vendors", "edit"), func(c *gin.Context) {
		var in UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		vendor, ok := repo.Update(c.Request.Context(), c.Param("id"), in)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "vendor not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "vendor": vendor})
	})

	rg.DELETE("/:id", middleware.RequireAction(session, "vendors", "delete"), func(c *gin.Context) {
		repo.Delete(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}
