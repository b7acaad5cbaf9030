package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/user"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]user.Profile, error)
	FindUserByID(ctx context.Context, id string) (user.Profile, error)
	ModifyUser(ctx context.Context, profile user.Profile) error
	RemoveUser(ctx context.Context, id string) error
}

type UserHandler struct {
	service UserService
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register mounts the user-administration endpoints; the group is expected to
// already carry auth. Everything here is admin-only.
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("", adminOnly, h.List)
	rg.PUT("/:id", adminOnly, h.Modify)
	rg.DELETE("/:id", adminOnly, h.Remove)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve users"})
		return
	}

	c.IndentedJSON(http.StatusOK, users)
}

func (h *UserHandler) Modify(c *gin.Context) {
	var profile user.Profile

	if err := c.BindJSON(&profile); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	profile.ID = c.Param("id")

	err := h.service.ModifyUser(c.Request.Context(), profile)

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "user updated"})
}

func (h *UserHandler) Remove(c *gin.Context) {
	err := h.service.RemoveUser(c.Request.Context(), c.Param("id"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "user deleted"})
}
