package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/auth"
	bk "github.com/nikoleta-vukajlovic/padel-platz-backend/booking"
	"github.com/nikoleta-vukajlovic/padel-platz-backend/court"
	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

type BookingService interface {
	AvailableSlots(ctx context.Context, date string) ([]bk.Slot, error)
	AvailableCourts(ctx context.Context, date string, start, end schedule.Clock) ([]court.Court, error)
	MaxBookableDuration(ctx context.Context, date string, start schedule.Clock, courtID string) (float64, error)
	CreateBooking(ctx context.Context, candidate bk.Booking) (bk.Booking, error)
	CancelBooking(ctx context.Context, id string, user auth.User) error
	MarkNoShow(ctx context.Context, id string) error
	FindBookingsForDate(ctx context.Context, date string, all bool) ([]bk.Booking, error)
	FindBookingsPerUser(ctx context.Context, userID string) ([]bk.Booking, error)
	FindRecentBookings(ctx context.Context, limit int) ([]bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterAvailability mounts the public, read-only grid endpoints.
func (h *BookingHandler) RegisterAvailability(rg *gin.RouterGroup) {
	rg.GET("/slots", h.Slots)
	rg.GET("/courts", h.Courts)
	rg.GET("/max-duration", h.MaxDuration)
}

// Register mounts the authenticated booking endpoints.
func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.POST("", h.Create)
	rg.GET("/mine", h.Mine)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.PUT("/:id/no-show", adminOnly, h.NoShow)
	rg.GET("", adminOnly, h.ListForDate)
	rg.GET("/recent", adminOnly, h.Recent)
}

func (h *BookingHandler) Slots(c *gin.Context) {
	slots, err := h.service.AvailableSlots(c.Request.Context(), c.Query("date"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidSelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch available slots"})
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

func (h *BookingHandler) Courts(c *gin.Context) {
	start, err := schedule.ParseClock(c.Query("startTime"))

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startTime"})
		return
	}

	end, err := schedule.ParseClock(c.Query("endTime"))

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endTime"})
		return
	}

	courts, err := h.service.AvailableCourts(c.Request.Context(), c.Query("date"), start, end)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidSelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to find available courts"})
		return
	}

	c.IndentedJSON(http.StatusOK, courts)
}

func (h *BookingHandler) MaxDuration(c *gin.Context) {
	start, err := schedule.ParseClock(c.Query("startTime"))

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startTime"})
		return
	}

	duration, err := h.service.MaxBookableDuration(c.Request.Context(), c.Query("date"), start, c.Query("courtId"))

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidSelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute max duration"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"maxDuration": duration})
}

func (h *BookingHandler) Create(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	if !user.EmailVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "email not verified"})
		return
	}

	var candidate bk.Booking

	if err := c.BindJSON(&candidate); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	candidate.UserID = user.ID

	if candidate.CustomerEmail == "" {
		candidate.CustomerEmail = user.Email
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), candidate)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrSlotUnavailable) {
			c.JSON(http.StatusConflict, gin.H{"error": "time slot is no longer available"})
		} else if errors.Is(err, bk.ErrInvalidSelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}

		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Mine(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	bookings, err := h.service.FindBookingsPerUser(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get bookings"})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	user := c.MustGet("user").(auth.User)

	err := h.service.CancelBooking(c.Request.Context(), id, user)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
		} else if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to cancel this booking"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking cancelled"})
}

func (h *BookingHandler) NoShow(c *gin.Context) {
	id := c.Param("id")

	err := h.service.MarkNoShow(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
		} else if errors.Is(err, bk.ErrBookingNotEnded) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "booking has not ended yet"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark booking as no-show"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking marked as no-show"})
}

func (h *BookingHandler) ListForDate(c *gin.Context) {
	all := c.Query("all") == "true"

	bookings, err := h.service.FindBookingsForDate(c.Request.Context(), c.Query("date"), all)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrInvalidSelection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) Recent(c *gin.Context) {
	limit := 50

	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)

		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}

		limit = parsed
	}

	bookings, err := h.service.FindRecentBookings(c.Request.Context(), limit)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve bookings"})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}
