package court

import (
	"errors"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

const (
	CategoryIndoor  = "indoor"
	CategoryOutdoor = "outdoor"
)

var ErrCourtNotFound = errors.New("court not found")

var ErrInvalidCategory = errors.New("court category must be indoor or outdoor")

type Court struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description"`
	Category       string                   `json:"category"`
	Features       []string                 `json:"features"`
	PricingPeriods []schedule.PricingPeriod `json:"pricingPeriods"`
}
