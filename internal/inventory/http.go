package inventory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp-civi/erp-backend/internal/auth/middleware"
	"github.com/erp-civi/erp-backend/internal/auth/service"
)

// Register attaches inventory routes to the given router group.
func Register(rg *gin.RouterGroup, repo *Repo, session *service.Session) {
	rg.GET("/materials", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "materials": repo.GetMaterials(c.Request.Context())})
	})

	rg.GET("/stock", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "stock": repo.GetStocks(c.Request.Context())})
	})

	rg.GET("/low-stock", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "materials": repo.LowStock(c.Request.Context())})
	})

	rg.POST("/materials", middleware.RequireAction(session, "inventory", "create"), func(c *gin.Context) {
		var in CreateMaterialInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "material": repo.CreateMaterial(c.Request.Context(), in)})
	})

	rg.PUT("/materials/:id/stock", middleware.RequireAction(session, "inventory", "edit"), func(c *gin.Context) {
		var in AdjustStockInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		stock, ok := repo.AdjustStock(c.Request.Context(), c.Param("id"), in.CurrentStock)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "stock record not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "stock": stock})
	})
}
