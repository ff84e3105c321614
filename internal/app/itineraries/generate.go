package itineraries

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/domain"
)

const generatedDayDescription = "Arrival and City Exploration"

var (
	generatedTotalCost     = decimal.NewFromInt(2850)
	generatedEstimatedCost = decimal.NewFromInt(285)
)

// arrivalDay is the fixed template used for trips without an itinerary. It
// does not look at the trip's destinations, dates, budget or interests.
var arrivalDay = []NewActivity{
	{
		Name:        "Airport Transfer",
		Type:        domain.ActivityTypeTransport,
		StartTime:   "10:00",
		Duration:    45,
		Cost:        decimal.NewFromInt(35),
		Location:    domain.Location{Address: "City Airport to Downtown Hotel", Lat: 40.7128, Lng: -74.0060},
		Description: "Private car transfer from airport",
	},
	{
		Name:        "Hotel Check-in",
		Type:        domain.ActivityTypeHotel,
		StartTime:   "11:30",
		Duration:    30,
		Cost:        decimal.Zero,
		Location:    domain.Location{Address: "Downtown Boutique Hotel", Lat: 40.7589, Lng: -73.9851},
		Description: "Check into your centrally located hotel",
	},
	{
		Name:        "City Walking Tour",
		Type:        domain.ActivityTypeAttraction,
		StartTime:   "14:00",
		Duration:    180,
		Cost:        decimal.NewFromInt(25),
		Location:    domain.Location{Address: "Historic City Center", Lat: 40.7505, Lng: -73.9934},
		Description: "Guided walking tour of the historic district",
	},
	{
		Name:        "Welcome Dinner",
		Type:        domain.ActivityTypeDining,
		StartTime:   "19:00",
		Duration:    120,
		Cost:        decimal.NewFromInt(85),
		Location:    domain.Location{Address: "Local Cuisine Restaurant", Lat: 40.7614, Lng: -73.9776},
		Description: "Traditional local cuisine with city views",
	},
}

func generatedInput(tripID domain.TripID, today time.Time) CreateItineraryInput {
	y, m, d := today.Date()
	return CreateItineraryInput{
		TripID:    tripID,
		Status:    domain.ItineraryStatusDraft,
		TotalCost: generatedTotalCost,
		Days: []DayInput{{
			Date:          time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
			Description:   generatedDayDescription,
			EstimatedCost: generatedEstimatedCost,
			Activities:    append([]NewActivity(nil), arrivalDay...),
		}},
	}
}
