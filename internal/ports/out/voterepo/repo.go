package voterepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/domain"
)

// Repository stores trip polls, most recently created first.
//
// Update runs fn under the write lock, which is what makes ballot casting
// check-and-set atomic.
type Repository interface {
	Create(ctx context.Context, v domain.Vote) error
	GetByID(ctx context.Context, id domain.VoteID) (domain.Vote, error)
	ListByTrip(ctx context.Context, tripID domain.TripID) ([]domain.Vote, error)
	Update(ctx context.Context, id domain.VoteID, fn func(*domain.Vote) error) (domain.Vote, error)
}
