package activities

import (
	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/domain"
)

type CreateActivityInput struct {
	TripID      domain.TripID
	Name        string
	Type        domain.ActivityType
	StartTime   string // HH:MM
	Duration    int    // minutes
	Cost        decimal.Decimal
	Location    domain.Location
	Description string
}

// UpdateActivityInput is a shallow patch, including the completed flag.
type UpdateActivityInput struct {
	Name        domain.Optional[string]
	Type        domain.Optional[domain.ActivityType]
	StartTime   domain.Optional[string] // null clears
	Duration    domain.Optional[int]
	Cost        domain.Optional[decimal.Decimal]
	Location    domain.Optional[domain.Location] // null clears
	Description domain.Optional[string]          // null clears
	Completed   domain.Optional[bool]
}
