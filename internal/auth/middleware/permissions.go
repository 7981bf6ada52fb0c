package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp-civi/erp-backend/internal/auth/service"
)

// RequireLogin rejects requests when nobody is logged in.
func RequireLogin(session *service.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not logged in"})
			return
		}
		c.Next()
	}
}

// RequireAction rejects requests the current user's role may not perform on
// the given module.
func RequireAction(session *service.Session, module, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not logged in"})
			return
		}
		if !session.CanPerform(module, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "error": "permission denied"})
			return
		}
		c.Next()
	}
}
