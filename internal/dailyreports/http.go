package dailyreports

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register attaches daily-report routes. Any logged-in user can submit a
// report; site engineers are the usual authors but the screen never gated
// this further.
func Register(rg *gin.RouterGroup, repo *Repo) {
	rg.GET("", func(c *gin.Context) {
		ctx := c.Request.Context()
		if projectID := c.Query("projectId"); projectID != "" {
			c.JSON(http.StatusOK, gin.H{"ok": true, "reports": repo.GetByProjectID(ctx, projectID)})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "reports": repo.GetAll(ctx)})
	})

	rg.POST("", func(c *gin.Context) {
		var in CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"ok": true, "report": repo.Create(c.Request.Context(), in)})
	})
}
