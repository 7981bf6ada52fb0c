package equipment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp-civi/erp-backend/internal/auth/middleware"
	"github.com/erp-civi/erp-backend/internal/auth/service"
)

// Register attaches equipment routes to the given router group.
func Register(rg *gin.RouterGroup, repo *Repo, session *service.Session) {
	rg.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "equipment": repo.GetAll(c.Request.Context())})
	})

	rg.GET("/allocations", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "allocations": repo.GetAllocations(c.Request.Context())})
	})

	rg.POST("", middleware.RequireAction(session, "equipment", "create"), func(c *gin.Context) {
		var in CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "equipment": repo.Create(c.Request.Context(), in)})
	})

	rg.PATCH("/:id", middleware.RequireAction(session, "equipment", "edit"), func(c *gin.Context) {
		var in UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		e, ok := repo.Update(c.Request.Context(), c.Param("id"), in)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "equipment not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "equipment": e})
	})

	rg.POST("/allocations", middleware.RequireAction(session, "equipment", "edit"), func(c *gin.Context) {
		var in AllocateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		a, ok := repo.Allocate(c.Request.Context(), in)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "equipment not found"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "allocation": a})
	})

	rg.POST("/:id/deallocate", middleware.RequireAction(session, "equipment", "edit"), func(c *gin.Context) {
		var in struct {
			Date string `json:"date"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		a, ok := repo.Deallocate(c.Request.Context(), c.Param("id"), in.Date)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "no active allocation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "allocation": a})
	})
}
