package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/court"
	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

type CourtService interface {
	GetAllCourts(ctx context.Context) ([]court.Court, error)
	FindCourtByID(ctx context.Context, id string) (court.Court, error)
	CreateCourt(ctx context.Context, c court.Court) (court.Court, error)
	ModifyCourt(ctx context.Context, c court.Court) error
	RemoveCourt(ctx context.Context, id string) error
}

type CourtHandler struct {
	service CourtService
}

func NewCourtHandler(service CourtService) *CourtHandler {
	return &CourtHandler{service: service}
}

// Register mounts the court endpoints: listing is public, mutations are
// admin-only behind the given auth middleware.
func (h *CourtHandler) Register(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	adminOnly := AdminOnly()
	rg.GET("", h.List)
	rg.POST("", authRequired, adminOnly, h.Create)
	rg.PUT("/:id", authRequired, adminOnly, h.Modify)
	rg.DELETE("/:id", authRequired, adminOnly, h.Remove)
}

func (h *CourtHandler) List(c *gin.Context) {
	courts, err := h.service.GetAllCourts(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve courts"})
		return
	}

	c.IndentedJSON(http.StatusOK, courts)
}

func (h *CourtHandler) Create(c *gin.Context) {
	var payload court.Court

	if err := c.BindJSON(&payload); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	inserted, err := h.service.CreateCourt(c.Request.Context(), payload)

	if err != nil {
		c.Error(err)
		if errors.Is(err, schedule.ErrPricingGap) || errors.Is(err, court.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create court"})
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *CourtHandler) Modify(c *gin.Context) {
	var payload court.Court

	if err := c.BindJSON(&payload); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	payload.ID = c.Param("id")

	err := h.service.ModifyCourt(c.Request.Context(), payload)

	if err != nil {
		c.Error(err)
		if errors.Is(err, court.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
		} else if errors.Is(err, schedule.ErrPricingGap) || errors.Is(err, court.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update court"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "court updated"})
}

func (h *CourtHandler) Remove(c *gin.Context) {
	err := h.service.RemoveCourt(c.Request.Context(), c.Param("id"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, court.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete court"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "court deleted"})
}
