package itineraryrepo

import "errors"

var (
	ErrNotFound = errors.New("itinerary not found")
	// ErrAlreadyExists is returned when the ID, or the trip, already has an itinerary.
	ErrAlreadyExists = errors.New("itinerary already exists")
)
