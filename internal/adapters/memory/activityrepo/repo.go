package activityrepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/adapters/memory/collection"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/activityrepo"
)

// Repo is an in-memory implementation of activityrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	activities *collection.List[domain.ActivityID, domain.Activity]
}

func NewRepo(seed ...domain.Activity) *Repo {
	return &Repo{
		// Activity holds no slices or maps and decimal.Decimal is immutable,
		// so a value copy is a deep copy.
		activities: collection.New(
			func(a domain.Activity) domain.ActivityID { return a.ID },
			func(a domain.Activity) domain.Activity { return a },
			seed...,
		),
	}
}

func (r *Repo) Create(ctx context.Context, a domain.Activity) error {
	_ = ctx
	if a.ID == "" || !r.activities.Insert(a, false, nil) {
		return activityrepo.ErrAlreadyExists
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ActivityID) (domain.Activity, error) {
	_ = ctx
	a, ok := r.activities.Get(id)
	if !ok {
		return domain.Activity{}, activityrepo.ErrNotFound
	}
	return a, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Activity, error) {
	_ = ctx
	return r.activities.Filter(nil), nil
}

func (r *Repo) ListByTrip(ctx context.Context, tripID domain.TripID) ([]domain.Activity, error) {
	_ = ctx
	return r.activities.Filter(func(a domain.Activity) bool { return a.TripID == tripID }), nil
}

func (r *Repo) ListByIDs(ctx context.Context, ids []domain.ActivityID) ([]domain.Activity, error) {
	_ = ctx
	if len(ids) == 0 {
		return []domain.Activity{}, nil
	}
	want := make(map[domain.ActivityID]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	found := r.activities.Filter(func(a domain.Activity) bool {
		_, ok := want[a.ID]
		return ok
	})
	byID := make(map[domain.ActivityID]domain.Activity, len(found))
	for _, a := range found {
		byID[a.ID] = a
	}
	out := make([]domain.Activity, 0, len(ids))
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *Repo) Update(ctx context.Context, id domain.ActivityID, fn func(*domain.Activity) error) (domain.Activity, error) {
	_ = ctx
	a, ok, err := r.activities.Update(id, func(a *domain.Activity) error {
		err := fn(a)
		a.ID = id
		return err
	})
	if !ok {
		return domain.Activity{}, activityrepo.ErrNotFound
	}
	if err != nil {
		return domain.Activity{}, err
	}
	return a, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.ActivityID) error {
	_ = ctx
	if !r.activities.Delete(id) {
		return activityrepo.ErrNotFound
	}
	return nil
}
