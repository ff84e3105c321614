package voterepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/adapters/memory/collection"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/voterepo"
)

// Repo is an in-memory implementation of voterepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	votes *collection.List[domain.VoteID, domain.Vote]
}

func NewRepo(seed ...domain.Vote) *Repo {
	return &Repo{
		votes: collection.New(func(v domain.Vote) domain.VoteID { return v.ID }, cloneVote, seed...),
	}
}

func (r *Repo) Create(ctx context.Context, v domain.Vote) error {
	_ = ctx
	// Newest first.
	if v.ID == "" || !r.votes.Insert(v, true, nil) {
		return voterepo.ErrAlreadyExists
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.VoteID) (domain.Vote, error) {
	_ = ctx
	v, ok := r.votes.Get(id)
	if !ok {
		return domain.Vote{}, voterepo.ErrNotFound
	}
	return v, nil
}

func (r *Repo) ListByTrip(ctx context.Context, tripID domain.TripID) ([]domain.Vote, error) {
	_ = ctx
	return r.votes.Filter(func(v domain.Vote) bool { return v.TripID == tripID }), nil
}

func (r *Repo) Update(ctx context.Context, id domain.VoteID, fn func(*domain.Vote) error) (domain.Vote, error) {
	_ = ctx
	v, ok, err := r.votes.Update(id, func(v *domain.Vote) error {
		err := fn(v)
		v.ID = id
		return err
	})
	if !ok {
		return domain.Vote{}, voterepo.ErrNotFound
	}
	if err != nil {
		return domain.Vote{}, err
	}
	return v, nil
}

func cloneVote(v domain.Vote) domain.Vote {
	cp := v
	if v.Options != nil {
		cp.Options = append([]string(nil), v.Options...)
	}
	if v.Votes != nil {
		cp.Votes = make(map[string]int, len(v.Votes))
		for k, n := range v.Votes {
			cp.Votes[k] = n
		}
	}
	if v.UserVote != nil {
		uv := *v.UserVote
		cp.UserVote = &uv
	}
	return cp
}
