package handlers

import (
	"html/template"
	"net/http"

	"techsphere/internal/logger"
	"techsphere/internal/service"
	"techsphere/internal/session"
	"techsphere/web"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services, sessions and logging.
type Handler struct {
	services *service.Service
	sessions *session.Store
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, sessions *session.Store, log *logger.Logger) *Handler {
	return &Handler{services: services, sessions: sessions, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Public routes
	router.GET("/", h.landing)
	router.POST("/", h.login)
	router.GET("/signup", h.signupForm)
	router.POST("/signup", h.signUp)
	router.POST("/logout", h.logout)

	// Live post feed (HTTP upgrade) — same port
	router.GET("/ws", h.wsFeed)

	// Session-gated routes
	h.registerProtectedRoutes(router)

	return router
}

func (h *Handler) registerProtectedRoutes(r *gin.Engine) {
	authed := r.Group("/", h.requireLogin)
	{
		authed.GET("/home", h.home)
		authed.GET("/myprofile", h.myProfile)
		authed.POST("/myprofile", h.updateProfile)
		authed.GET("/myblogs", h.myBlogs)
		authed.GET("/addblog", h.addBlogForm)
		authed.POST("/addblog", h.addBlog)
		authed.GET("/editpost", h.editPostForm)
		authed.POST("/editpost", h.editPost)
		authed.POST("/deletepost", h.deletePost)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
