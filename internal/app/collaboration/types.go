package collaboration

import "github.com/tripkit/planner-api/internal/domain"

type CreateVoteInput struct {
	TripID    domain.TripID
	Title     string
	Options   []string
	CreatedBy string // empty means the current user
}
