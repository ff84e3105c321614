package activityrepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/domain"
)

// Repository is the canonical store of activities, in creation order.
type Repository interface {
	Create(ctx context.Context, a domain.Activity) error
	GetByID(ctx context.Context, id domain.ActivityID) (domain.Activity, error)
	List(ctx context.Context) ([]domain.Activity, error)
	ListByTrip(ctx context.Context, tripID domain.TripID) ([]domain.Activity, error)

	// ListByIDs returns the activities that exist among ids, in the order of ids.
	// Unknown IDs are skipped.
	ListByIDs(ctx context.Context, ids []domain.ActivityID) ([]domain.Activity, error)

	Update(ctx context.Context, id domain.ActivityID, fn func(*domain.Activity) error) (domain.Activity, error)
	Delete(ctx context.Context, id domain.ActivityID) error
}
