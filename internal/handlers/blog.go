package handlers

import (
	"errors"
	"net/http"

	"techsphere/internal/service"

	"github.com/gin-gonic/gin"
)

// Body field names differ from the stored attribute names on purpose: the
// public form posts "title"/"body", the record stores Title/Content.
type addBlogRequest struct {
	Title string `form:"title" json:"title" binding:"required"`
	Body  string `form:"body" json:"body" binding:"required"`
}

type editPostRequest struct {
	Title   string `form:"title" json:"title" binding:"required"`
	Content string `form:"content" json:"content" binding:"required"`
}

type deletePostRequest struct {
	PostID string `form:"postId" json:"postId" binding:"required"`
}

// @Summary      Post feed
// @Tags         blog
// @Produce      html
// @Success      200  {string}  string
// @Failure      401  {string}  string
// @Failure      500  {string}  string
// @Router       /home [get]
func (h *Handler) home(c *gin.Context) {
	username := currentUsername(c)

	posts, err := h.services.Blog.Feed(c.Request.Context())
	if err != nil {
		if h.log != nil {
			h.log.Errorw("feed_failed", "err", err)
		}
		c.String(http.StatusInternalServerError, errInternal)
		return
	}

	c.HTML(http.StatusOK, "homepage.html", gin.H{
		"Name":  username,
		"Posts": posts,
	})
}

// @Summary      Own posts
// @Tags         blog
// @Produce      html
// @Success      200  {string}  string
// @Failure      401  {string}  string
// @Failure      500  {string}  string
// @Router       /myblogs [get]
func (h *Handler) myBlogs(c *gin.Context) {
	username := currentUsername(c)

	posts, err := h.services.Blog.ByAuthor(c.Request.Context(), username)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("my_blogs_failed", "err", err, "username", username)
		}
		c.String(http.StatusInternalServerError, errInternal)
		return
	}

	c.HTML(http.StatusOK, "myblogs.html", gin.H{
		"Name":       username,
		"Posts":      posts,
		"TotalPosts": len(posts),
	})
}

// @Summary      New-post form
// @Tags         blog
// @Produce      html
// @Success      200  {string}  string
// @Failure      401  {string}  string
// @Router       /addblog [get]
func (h *Handler) addBlogForm(c *gin.Context) {
	c.HTML(http.StatusOK, "addblog.html", nil)
}

// @Summary      Create post
// @Description  Creates a post authored by the session username. A duplicate title surfaces as a generic failure.
// @Tags         blog
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Param        title  formData  string  true  "Title"
// @Param        body   formData  string  true  "Content"
// @Success      200  {string}  string
// @Failure      401  {string}  string
// @Failure      500  {object}  map[string]string
// @Router       /addblog [post]
func (h *Handler) addBlog(c *gin.Context) {
	username := currentUsername(c)

	var input addBlogRequest
	if err := c.ShouldBind(&input); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreatePost, "add_blog_bad_body", err, "username", username)
		return
	}

	if _, err := h.services.Blog.Create(c.Request.Context(), username, input.Title, input.Body); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreatePost, "add_blog_failed", err, "username", username, "title", input.Title)
		return
	}

	c.String(http.StatusOK, msgPostCreated)
}

// @Summary      Edit-post form
// @Tags         blog
// @Produce      html
// @Param        postId  query  string  true  "Post identifier"
// @Success      200  {string}  string
// @Failure      401  {string}  string
// @Failure      404  {string}  string
// @Failure      500  {string}  string
// @Router       /editpost [get]
func (h *Handler) editPostForm(c *gin.Context) {
	postID := c.Query("postId")

	post, err := h.services.Blog.Get(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.String(http.StatusNotFound, errPostNotFound)
			return
		}
		if h.log != nil {
			h.log.Errorw("edit_post_form_failed", "err", err, "post_id", postID)
		}
		c.String(http.StatusInternalServerError, errInternal)
		return
	}

	c.HTML(http.StatusOK, "editpost.html", gin.H{"Post": post})
}

// @Summary      Apply post edit
// @Description  Overwrites title and content of an owned post; author and creation time are untouched.
// @Tags         blog
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Param        postId   query     string  true  "Post identifier"
// @Param        title    formData  string  true  "Title"
// @Param        content  formData  string  true  "Content"
// @Success      303  {string}  string  "redirect to /home"
// @Failure      401  {string}  string
// @Failure      403  {object}  map[string]string
// @Failure      404  {string}  string
// @Failure      500  {object}  map[string]string
// @Router       /editpost [post]
func (h *Handler) editPost(c *gin.Context) {
	username := currentUsername(c)
	postID := c.Query("postId")

	var input editPostRequest
	if err := c.ShouldBind(&input); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdatePost, "edit_post_bad_body", err, "post_id", postID)
		return
	}

	err := h.services.Blog.Edit(c.Request.Context(), username, postID, input.Title, input.Content)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			c.String(http.StatusNotFound, errPostNotFound)
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": errNotPostOwner})
		default:
			h.logAndJSONError(c, http.StatusInternalServerError, errUpdatePost, "edit_post_failed", err, "post_id", postID)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/home")
}

// @Summary      Delete post
// @Description  Deletes an owned post. A nonexistent identifier is a no-op that still reports success.
// @Tags         blog
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        postId  formData  string  true  "Post identifier"
// @Success      200  {object}  map[string]string
// @Failure      401  {string}  string
// @Failure      403  {object}  map[string]string
// @Failure      500  {string}  string
// @Router       /deletepost [post]
func (h *Handler) deletePost(c *gin.Context) {
	username := currentUsername(c)

	var input deletePostRequest
	if err := c.ShouldBind(&input); err != nil {
		if h.log != nil {
			h.log.Infow("delete_post_bad_body", "err", err)
		}
		c.String(http.StatusInternalServerError, errInternal)
		return
	}

	err := h.services.Blog.Delete(c.Request.Context(), username, input.PostID)
	if err != nil {
		if errors.Is(err, service.ErrNotOwner) {
			c.JSON(http.StatusForbidden, gin.H{"error": errNotPostOwner})
			return
		}
		if h.log != nil {
			h.log.Errorw("delete_post_failed", "err", err, "post_id", input.PostID)
		}
		c.String(http.StatusInternalServerError, errInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msgPostDeleted})
}
