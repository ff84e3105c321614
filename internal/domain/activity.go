package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ActivityType string

const (
	ActivityTypeFlight     ActivityType = "flight"
	ActivityTypeHotel      ActivityType = "hotel"
	ActivityTypeAttraction ActivityType = "attraction"
	ActivityTypeDining     ActivityType = "dining"
	ActivityTypeTransport  ActivityType = "transport"
	ActivityTypeOther      ActivityType = "other"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityTypeFlight, ActivityTypeHotel, ActivityTypeAttraction, ActivityTypeDining, ActivityTypeTransport, ActivityTypeOther:
		return true
	default:
		return false
	}
}

// TimeOfDayLayout is the layout of Activity.StartTime.
const TimeOfDayLayout = "15:04"

type Location struct {
	Address string
	Lat     float64
	Lng     float64
}

// Activity is a single scheduled item. The activity store is the only owner
// of activity state; itineraries reference activities by ID.
type Activity struct {
	ID     ActivityID
	TripID TripID

	Name        string
	Type        ActivityType
	StartTime   string // HH:MM, may be empty
	Duration    int    // minutes
	Cost        decimal.Decimal
	Location    Location
	Description string
	Completed   bool

	CreatedAt time.Time
}

// CanonicalStartTime rewrites a parseable start time as HH:MM, so "9:00"
// becomes "09:00". Empty and unparseable values are returned unchanged.
func CanonicalStartTime(s string) string {
	if s == "" {
		return s
	}
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return s
	}
	return t.Format(TimeOfDayLayout)
}

// ValidateActivity checks the fields a caller controls and returns a
// field -> problem map, or nil when the activity is acceptable.
func ValidateActivity(a Activity) map[string]any {
	details := map[string]any{}
	if a.Name == "" {
		details["name"] = "must be non-empty"
	}
	if !a.Type.Valid() {
		details["type"] = "must be one of flight, hotel, attraction, dining, transport, other"
	}
	if a.StartTime != "" {
		if _, err := time.Parse(TimeOfDayLayout, a.StartTime); err != nil {
			details["startTime"] = "must be HH:MM"
		}
	}
	if a.Duration < 0 {
		details["duration"] = "must be >= 0"
	}
	if a.Cost.IsNegative() {
		details["cost"] = "must be >= 0"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
