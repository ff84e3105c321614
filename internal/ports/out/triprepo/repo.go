package triprepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/domain"
)

// Repository provides access to stored trips.
//
// Ordering: List returns the most recently created trip first; seed trips
// keep their fixture order after any created ones.
// Every returned value is a copy; mutating it does not affect the store.
type Repository interface {
	Create(ctx context.Context, t domain.Trip) error
	GetByID(ctx context.Context, id domain.TripID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)

	// Update applies fn to a copy of the stored trip under the write lock and
	// stores the result if fn returns nil.
	Update(ctx context.Context, id domain.TripID, fn func(*domain.Trip) error) (domain.Trip, error)
	Delete(ctx context.Context, id domain.TripID) error
}
