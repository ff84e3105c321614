package itineraries

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/domain"
)

// NewActivity is an activity created together with an itinerary day.
type NewActivity struct {
	Name        string
	Type        domain.ActivityType
	StartTime   string
	Duration    int
	Cost        decimal.Decimal
	Location    domain.Location
	Description string
}

type DayInput struct {
	Date          time.Time
	Description   string
	EstimatedCost decimal.Decimal
	Activities    []NewActivity
}

type CreateItineraryInput struct {
	TripID    domain.TripID
	Status    domain.ItineraryStatus // empty means draft
	TotalCost decimal.Decimal
	Days      []DayInput
}

// DayUpdate replaces a stored day. ActivityIDs must name existing activities.
type DayUpdate struct {
	Date          time.Time
	Description   string
	EstimatedCost decimal.Decimal
	ActivityIDs   []domain.ActivityID
}

type UpdateItineraryInput struct {
	Status    domain.Optional[domain.ItineraryStatus]
	TotalCost domain.Optional[decimal.Decimal]
	Days      domain.Optional[[]DayUpdate] // null clears all days
}
