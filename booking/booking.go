package booking

import (
	"time"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/court"
	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

type Booking struct {
	ID            string         `json:"id"`
	CourtID       string         `json:"courtId"`
	Date          string         `json:"date"` // YYYY-MM-DD
	Start         schedule.Clock `json:"startTime"`
	End           schedule.Clock `json:"endTime"`
	Status        string         `json:"status"` // confirmed, cancelled, no-show
	UserID        string         `json:"userId,omitempty"`
	ManagerID     string         `json:"managerId,omitempty"`
	CustomerName  string         `json:"customerName,omitempty"`
	CustomerEmail string         `json:"customerEmail,omitempty"`
	CustomerPhone string         `json:"customerPhone,omitempty"`
	Price         int            `json:"price"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// Slot is the API view of one grid cell, with the free court ids resolved to
// full court documents for rendering.
type Slot struct {
	StartTime       schedule.Clock `json:"startTime"`
	EndTime         schedule.Clock `json:"endTime"`
	IsAvailable     bool           `json:"isAvailable"`
	AvailableCourts []court.Court  `json:"availableCourts"`
}
