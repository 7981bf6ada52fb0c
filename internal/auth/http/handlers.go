package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/erp-civi/erp-backend/internal/auth/service"
)

type Handler struct {
	session *service.Session
}

func NewHandler(session *service.Session) *Handler {
	return &Handler{session: session}
}

type loginReq struct {
	Role string `json:"role"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	role, err := service.ParseRole(req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	user, err := h.session.LoginAsRole(c.Request.Context(), role)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}

func (h *Handler) logout(c *gin.Context) {
	h.session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) me(c *gin.Context) {
	user, ok := h.session.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}
