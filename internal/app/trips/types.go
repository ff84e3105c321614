package trips

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/domain"
)

type CreateTripInput struct {
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	Destinations []string
	Budget       decimal.Decimal
	Currency     string // ISO 4217; empty means USD
	TravelStyle  string
	Interests    []string
}

// UpdateTripInput is a shallow patch. Unspecified fields keep their stored value.
type UpdateTripInput struct {
	// Name, dates, budget and currency cannot be null.
	Name      domain.Optional[string]
	Status    domain.Optional[domain.TripStatus]
	StartDate domain.Optional[time.Time]
	EndDate   domain.Optional[time.Time]
	Budget    domain.Optional[decimal.Decimal]
	Currency  domain.Optional[string]
	Spent     domain.Optional[decimal.Decimal]

	// Null clears these.
	Destinations domain.Optional[[]string]
	TravelStyle  domain.Optional[string]
	Interests    domain.Optional[[]string]
}
