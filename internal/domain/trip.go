package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire and display layout of date-only values.
const DateLayout = "2006-01-02"

type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusActive    TripStatus = "active"
	TripStatusCompleted TripStatus = "completed"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusUpcoming, TripStatusActive, TripStatusCompleted:
		return true
	default:
		return false
	}
}

// Trip is the top-level planning unit.
//
// StartDate/EndDate carry date-only semantics; DateRange is derived from them.
// Spent is a stored figure and is not recomputed from expenses.
type Trip struct {
	ID     TripID
	Name   string
	Status TripStatus

	StartDate time.Time
	EndDate   time.Time
	DateRange string

	Destinations []string

	Budget   decimal.Decimal
	Currency string
	Spent    decimal.Decimal

	TravelStyle string
	Interests   []string

	// Members[0] is always the organizer who created the trip.
	Members []Member

	CreatedAt time.Time
}

// FormatDateRange renders the "start - end" label shown on trip cards.
func FormatDateRange(start, end time.Time) string {
	return start.Format(DateLayout) + " - " + end.Format(DateLayout)
}
