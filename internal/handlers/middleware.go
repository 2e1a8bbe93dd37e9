package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const usernameCtxKey = "username"

// requireLogin gates a route on the presence of a session username. A missing
// or invalid session answers 401 plain text; no distinction is made between
// "never logged in" and "session expired".
func (h *Handler) requireLogin(c *gin.Context) {
	username := h.sessions.Username(c.Request)
	if username == "" {
		c.String(http.StatusUnauthorized, "Unauthorized")
		c.Abort()
		return
	}

	// store in Gin context
	c.Set(usernameCtxKey, username)
	c.Next()
}

// currentUsername returns the session username stored by requireLogin.
func currentUsername(c *gin.Context) string {
	username, _ := c.Get(usernameCtxKey)
	s, _ := username.(string)
	return s
}
