package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SearchType string

const (
	SearchTypeAll         SearchType = "all"
	SearchTypeFlights     SearchType = "flights"
	SearchTypeHotels      SearchType = "hotels"
	SearchTypeActivities  SearchType = "activities"
	SearchTypeRestaurants SearchType = "restaurants"
)

func (t SearchType) Valid() bool {
	switch t {
	case SearchTypeAll, SearchTypeFlights, SearchTypeHotels, SearchTypeActivities, SearchTypeRestaurants:
		return true
	default:
		return false
	}
}

type SortBy string

const (
	SortByRelevance SortBy = "relevance"
	SortByPriceLow  SortBy = "price-low"
	SortByPriceHigh SortBy = "price-high"
	SortByRating    SortBy = "rating"
	SortByDistance  SortBy = "distance"
)

func (s SortBy) Valid() bool {
	switch s {
	case SortByRelevance, SortByPriceLow, SortByPriceHigh, SortByRating, SortByDistance:
		return true
	default:
		return false
	}
}

// SearchItem is a bookable offer from the static catalog.
type SearchItem struct {
	ID            SearchItemID
	Name          string
	Type          SearchType
	Description   string
	Location      string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	Currency      string
	Rating        float64
	Distance      float64 // km
	Provider      string
}

type BookingStatus string

const BookingStatusConfirmed BookingStatus = "confirmed"

// Booking is a synthesized confirmation. No inventory is reserved.
type Booking struct {
	ID          BookingID
	ItemID      SearchItemID
	Status      BookingStatus
	BookingDate time.Time
}
