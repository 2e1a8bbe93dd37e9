package handlers

import (
	"errors"
	"net/http"

	"techsphere/internal/service"

	"github.com/gin-gonic/gin"
)

// The username is not part of the payload: the record key is always the
// session identity, so one user can never overwrite another's profile.
type profileUpdateRequest struct {
	FullName string `form:"fullname" json:"fullname" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=8,max=50"`
}

// @Summary      Own profile
// @Description  Re-fetches the user record for the session username and renders it. The credential is never part of the view.
// @Tags         profile
// @Produce      html
// @Success      200  {string}  string
// @Failure      401  {string}  string
// @Failure      404  {string}  string
// @Failure      500  {string}  string
// @Router       /myprofile [get]
func (h *Handler) myProfile(c *gin.Context) {
	username := currentUsername(c)

	user, err := h.services.Profile.Get(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.String(http.StatusNotFound, errUserNotFound)
			return
		}
		if h.log != nil {
			h.log.Errorw("profile_get_failed", "err", err, "username", username)
		}
		c.String(http.StatusInternalServerError, errInternal)
		return
	}

	c.HTML(http.StatusOK, "myprofile.html", gin.H{
		"FullName": user.FullName,
		"Username": user.Username,
		"Email":    user.Email,
	})
}

// @Summary      Update own profile
// @Description  Overwrites full name, email and password for the session user, then destroys the session so the next request must log in again.
// @Tags         profile
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Param        fullname  formData  string  true  "Full name"
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "New password"
// @Success      303  {string}  string  "redirect to /"
// @Failure      401  {string}  string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /myprofile [post]
func (h *Handler) updateProfile(c *gin.Context) {
	username := currentUsername(c)

	var input profileUpdateRequest
	if err := c.ShouldBind(&input); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errProfileUpdate, "profile_validation_failed", err, "username", username)
		return
	}

	err := h.services.Profile.Update(c.Request.Context(), username, service.ProfileParams{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errUserNoChanges})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errProfileUpdate, "profile_update_failed", err, "username", username)
		return
	}

	// The session snapshot is now stale; force a fresh login. Exactly one
	// terminal response is produced either way.
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errProfileUpdate, "session_clear_failed", err, "username", username)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
