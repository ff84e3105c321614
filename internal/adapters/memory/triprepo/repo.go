package triprepo

import (
	"context"
	"time"

	"github.com/tripkit/planner-api/internal/adapters/memory/collection"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/triprepo"
)

// Repo is an in-memory implementation of triprepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	trips *collection.List[domain.TripID, domain.Trip]
}

// NewRepo returns a repo holding seed in the given order.
func NewRepo(seed ...domain.Trip) *Repo {
	return &Repo{
		trips: collection.New(func(t domain.Trip) domain.TripID { return t.ID }, cloneTrip, seed...),
	}
}

func (r *Repo) Create(ctx context.Context, t domain.Trip) error {
	_ = ctx
	if t.ID == "" {
		return triprepo.ErrAlreadyExists // treat empty ID as invalid for now
	}
	// Newest first.
	if !r.trips.Insert(t, true, nil) {
		return triprepo.ErrAlreadyExists
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	_ = ctx
	t, ok := r.trips.Get(id)
	if !ok {
		return domain.Trip{}, triprepo.ErrNotFound
	}
	return t, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Trip, error) {
	_ = ctx
	return r.trips.Filter(nil), nil
}

func (r *Repo) Update(ctx context.Context, id domain.TripID, fn func(*domain.Trip) error) (domain.Trip, error) {
	_ = ctx
	t, ok, err := r.trips.Update(id, func(t *domain.Trip) error {
		err := fn(t)
		t.ID = id
		return err
	})
	if !ok {
		return domain.Trip{}, triprepo.ErrNotFound
	}
	if err != nil {
		return domain.Trip{}, err
	}
	return t, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.TripID) error {
	_ = ctx
	if !r.trips.Delete(id) {
		return triprepo.ErrNotFound
	}
	return nil
}

func cloneTrip(t domain.Trip) domain.Trip {
	cp := t
	cp.Destinations = cloneStrings(t.Destinations)
	cp.Interests = cloneStrings(t.Interests)
	if t.Members != nil {
		cp.Members = make([]domain.Member, len(t.Members))
		for i, m := range t.Members {
			cp.Members[i] = m
			cp.Members[i].JoinedAt = cloneTimePtr(m.JoinedAt)
		}
	}
	return cp
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
