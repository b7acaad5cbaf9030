package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/auth"
	bk "github.com/nikoleta-vukajlovic/padel-platz-backend/booking"
	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

const pendingCookieName = "pendingBooking"

// PendingBooking is the half-completed reservation carried across the login
// redirect in a signed cookie, replayed exactly once after authentication.
type PendingBooking struct {
	Date      string         `json:"date"`
	StartTime schedule.Clock `json:"startTime"`
	CourtID   string         `json:"courtId"`
	Duration  float64        `json:"duration"`
	Price     int            `json:"price"`
}

type PendingBookingStore struct{ sc *securecookie.SecureCookie }

func NewPendingBookingStore(hashKey, blockKey []byte) *PendingBookingStore {
	return &PendingBookingStore{sc: securecookie.New(hashKey, blockKey)}
}

func (s *PendingBookingStore) Set(w http.ResponseWriter, pending PendingBooking) error {
	encoded, err := s.sc.Encode(pendingCookieName, pending)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name: pendingCookieName, Value: encoded, Path: "/",
		MaxAge:   600,
		HttpOnly: true, SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *PendingBookingStore) Get(r *http.Request) (PendingBooking, bool) {
	c, err := r.Cookie(pendingCookieName)
	if err != nil {
		return PendingBooking{}, false
	}
	var pending PendingBooking
	if err := s.sc.Decode(pendingCookieName, c.Value, &pending); err != nil {
		return PendingBooking{}, false
	}
	return pending, true
}

func (s *PendingBookingStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name: pendingCookieName, Value: "", Path: "/", MaxAge: -1,
		HttpOnly: true, SameSite: http.SameSiteLaxMode,
	})
}

type PendingBookingHandler struct {
	store   *PendingBookingStore
	service BookingService
}

func NewPendingBookingHandler(store *PendingBookingStore, service BookingService) *PendingBookingHandler {
	return &PendingBookingHandler{store: store, service: service}
}

// Register mounts the handoff endpoints: saving the cookie is public (it
// happens right before the login redirect), confirming requires auth.
func (h *PendingBookingHandler) Register(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	rg.POST("", h.Save)
	rg.POST("/confirm", authRequired, h.Confirm)
}

func (h *PendingBookingHandler) Save(c *gin.Context) {
	var pending PendingBooking

	if err := c.BindJSON(&pending); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	if err := h.store.Set(c.Writer, pending); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save pending booking"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "pending booking saved"})
}

// Confirm replays the pending booking for the now-authenticated user. The
// cookie is discarded whether or not the replay succeeds; a stale selection
// surfaces as a conflict and the user re-picks.
func (h *PendingBookingHandler) Confirm(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	pending, found := h.store.Get(c.Request)

	h.store.Clear(c.Writer)

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending booking"})
		return
	}

	if !user.EmailVerified {
		c.JSON(http.StatusForbidden, gin.H{"error": "email not verified"})
		return
	}

	end := pending.StartTime + schedule.Clock(schedule.RequiredHalfHours(pending.Duration)*schedule.SlotLength)

	candidate := bk.Booking{
		CourtID:       pending.CourtID,
		Date:          pending.Date,
		Start:         pending.StartTime,
		End:           end,
		UserID:        user.ID,
		CustomerEmail: user.Email,
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
