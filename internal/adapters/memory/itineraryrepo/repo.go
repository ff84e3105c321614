package itineraryrepo

import (
	"context"

	"github.com/tripkit/planner-api/internal/adapters/memory/collection"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/itineraryrepo"
)

// Repo is an in-memory implementation of itineraryrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	items *collection.List[domain.ItineraryID, domain.Itinerary]
}

func NewRepo(seed ...domain.Itinerary) *Repo {
	return &Repo{
		items: collection.New(func(it domain.Itinerary) domain.ItineraryID { return it.ID }, cloneItinerary, seed...),
	}
}

func (r *Repo) Create(ctx context.Context, it domain.Itinerary) error {
	_ = ctx
	if it.ID == "" {
		return itineraryrepo.ErrAlreadyExists
	}
	// One itinerary per trip.
	ok := r.items.Insert(it, false, func(existing domain.Itinerary) bool {
		return existing.TripID == it.TripID
	})
	if !ok {
		return itineraryrepo.ErrAlreadyExists
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ItineraryID) (domain.Itinerary, error) {
	_ = ctx
	it, ok := r.items.Get(id)
	if !ok {
		return domain.Itinerary{}, itineraryrepo.ErrNotFound
	}
	return it, nil
}

func (r *Repo) GetByTripID(ctx context.Context, tripID domain.TripID) (domain.Itinerary, error) {
	_ = ctx
	it, ok := r.items.Find(func(it domain.Itinerary) bool { return it.TripID == tripID })
	if !ok {
		return domain.Itinerary{}, itineraryrepo.ErrNotFound
	}
	return it, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Itinerary, error) {
	_ = ctx
	return r.items.Filter(nil), nil
}

func (r *Repo) Update(ctx context.Context, id domain.ItineraryID, fn func(*domain.Itinerary) error) (domain.Itinerary, error) {
	_ = ctx
	it, ok, err := r.items.Update(id, func(it *domain.Itinerary) error {
		tripID := it.TripID
		err := fn(it)
		it.ID, it.TripID = id, tripID
		return err
	})
	if !ok {
		return domain.Itinerary{}, itineraryrepo.ErrNotFound
	}
	if err != nil {
		return domain.Itinerary{}, err
	}
	return it, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.ItineraryID) error {
	_ = ctx
	if !r.items.Delete(id) {
		return itineraryrepo.ErrNotFound
	}
	return nil
}

// cloneItinerary copies the stored shape. Projected activities are dropped:
// the store only keeps activity references.
func cloneItinerary(it domain.Itinerary) domain.Itinerary {
	cp := it
	if it.Days != nil {
		cp.Days = make([]domain.Day, len(it.Days))
		for i, d := range it.Days {
			cp.Days[i] = d
			cp.Days[i].Activities = nil
			if d.ActivityIDs != nil {
				cp.Days[i].ActivityIDs = append([]domain.ActivityID(nil), d.ActivityIDs...)
			}
		}
	}
	return cp
}
