package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type ItineraryStatus string

const (
	ItineraryStatusDraft     ItineraryStatus = "draft"
	ItineraryStatusConfirmed ItineraryStatus = "confirmed"
)

func (s ItineraryStatus) Valid() bool {
	return s == ItineraryStatusDraft || s == ItineraryStatusConfirmed
}

// Itinerary is the day-by-day plan of exactly one trip.
type Itinerary struct {
	ID        ItineraryID
	TripID    TripID
	Status    ItineraryStatus
	TotalCost decimal.Decimal
	Days      []Day
	CreatedAt time.Time
}

// Day is one entry of an itinerary. Days are ordered by offset from the trip start.
//
// ActivityIDs is the stored reference list; Activities is a read-time
// projection from the activity store and is never persisted.
type Day struct {
	Date          time.Time
	Description   string
	EstimatedCost decimal.Decimal
	ActivityIDs   []ActivityID
	Activities    []Activity
}

// SortActivitiesByStart orders activities by time of day; activities without
// a parseable start time go last. The sort is stable so equal times keep their
// stored order.
func SortActivitiesByStart(as []Activity) {
	sort.SliceStable(as, func(i, j int) bool {
		a, aok := startOffset(as[i].StartTime)
		b, bok := startOffset(as[j].StartTime)
		if !aok || !bok {
			return aok && !bok
		}
		return a < b
	})
}

func startOffset(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}
