package handlers

import (
	"errors"
	"net/http"

	"techsphere/internal/service"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// Signup constraints: username 3–50, password 8–50, well-formed email,
// full name merely present. Validation runs before any persistence attempt.
type signupRequest struct {
	FullName string `form:"fullname" json:"fullname" binding:"required"`
	Username string `form:"username" json:"username" binding:"required,min=3,max=50"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=8,max=50"`
}

// @Summary      Landing page
// @Tags         pages
// @Produce      html
// @Success      200  {string}  string
// @Router       / [get]
func (h *Handler) landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

// @Summary      Signup form
// @Tags         pages
// @Produce      html
// @Success      200  {string}  string
// @Router       /signup [get]
func (h *Handler) signupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", nil)
}

// @Summary      Log in
// @Description  Verifies credentials, establishes the session and redirects to /home. A short-lived token is minted alongside the session.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      303  {string}  string  "redirect to /home"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       / [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBind(&input); err != nil {
		// Unparseable credentials are indistinguishable from bad ones.
		c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCreds})
		return
	}

	user, token, err := h.services.Authorization.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidPassword) {
			if h.log != nil {
				h.log.Infow("login_rejected", "username", input.Username)
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCreds})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errLoginFailed, "login_failed", err, "username", input.Username)
		return
	}

	// Only the username travels in the cookie; the record is re-fetched per
	// request. The token rides along but gates nothing.
	if err := h.sessions.SetUser(c.Writer, c.Request, user.Username, token); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errLoginFailed, "session_write_failed", err, "username", user.Username)
		return
	}

	c.Redirect(http.StatusSeeOther, "/home")
}

// @Summary      Sign up
// @Description  Validates the input (username 3–50, password 8–50, email format) and creates the user.
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        fullname  formData  string  true  "Full name"
// @Param        username  formData  string  true  "Username"
// @Param        email     formData  string  true  "Email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  map[string]interface{}  "message, user"
// @Failure      500  {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signupRequest
	if err := c.ShouldBind(&input); err != nil {
		// Validation failures surface generically; the field detail is only logged.
		h.logAndJSONError(c, http.StatusInternalServerError, errSignupFailed, "signup_validation_failed", err)
		return
	}

	user, err := h.services.Authorization.SignUp(c.Request.Context(), service.SignUpParams{
		FullName: input.FullName,
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		// Uniqueness violations land here too, indistinguishable from any
		// other persistence error.
		h.logAndJSONError(c, http.StatusInternalServerError, errSignupFailed, "signup_failed", err, "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgUserCreated, "user": user})
}

// @Summary      Log out
// @Description  Destroys the session unconditionally and redirects to the landing page.
// @Tags         auth
// @Success      303  {string}  string  "redirect to /"
// @Failure      500  {string}  string
// @Router       /logout [post]
func (h *Handler) logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Writer, c.Request); err != nil {
		if h.log != nil {
			h.log.Errorw("logout_failed", "err", err)
		}
		c.String(http.StatusInternalServerError, errLogoutFailed)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
