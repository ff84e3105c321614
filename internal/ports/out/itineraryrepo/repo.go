package itineraryrepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/domain"
)

// Repository stores itineraries with at most one itinerary per trip.
//
// Stored days keep ActivityIDs only; Day.Activities is always returned empty
// and is filled in by the application layer.
type Repository interface {
	Create(ctx context.Context, it domain.Itinerary) error
	GetByID(ctx context.Context, id domain.ItineraryID) (domain.Itinerary, error)
	GetByTripID(ctx context.Context, tripID domain.TripID) (domain.Itinerary, error)
	List(ctx context.Context) ([]domain.Itinerary, error)
	Update(ctx context.Context, id domain.ItineraryID, fn func(*domain.Itinerary) error) (domain.Itinerary, error)
	Delete(ctx context.Context, id domain.ItineraryID) error
}
