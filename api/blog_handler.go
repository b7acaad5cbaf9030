package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/blog"
)

type BlogService interface {
	GetPosts(ctx context.Context) ([]blog.Post, error)
	GetPostByID(ctx context.Context, id string) (blog.Post, error)
}

type BlogHandler struct {
	service BlogService
}

func NewBlogHandler(service BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

func (h *BlogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

func (h *BlogHandler) List(c *gin.Context) {
	posts, err := h.service.GetPosts(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve blog posts"})
		return
	}

	c.IndentedJSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetByID(c *gin.Context) {
	post, err := h.service.GetPostByID(c.Request.Context(), c.Param("id"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, blog.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch blog post"})
		return
	}

	c.IndentedJSON(http.StatusOK, post)
}
