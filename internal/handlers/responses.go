package handlers

import (
	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	msgUserCreated = "User created successfully"
	msgPostCreated = "Blog post created successfully"
	msgPostDeleted = "Post deleted successfully"

	errSignupFailed    = "Signup failed"
	errLoginFailed     = "Login failed"
	errInvalidCreds    = "Invalid username or password"
	errProfileUpdate   = "Profile update failed"
	errCreatePost      = "Failed to create blog post"
	errUpdatePost      = "Failed to update post"
	errLogoutFailed    = "Logout failed"
	errInternal        = "Internal server error"
	errUserNotFound    = "User not found"
	errUserNoChanges   = "User not found or no changes made"
	errPostNotFound    = "Post not found"
	errNotPostOwner    = "you can only modify your own posts"
)

// Centralized error logging and response. The original cause stays
// server-side; the caller only sees userMsg.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}
