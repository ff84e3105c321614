package itineraries

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tripkit/planner-api/internal/app/apperr"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/activityrepo"
	"github.com/tripkit/planner-api/internal/ports/out/clock"
	"github.com/tripkit/planner-api/internal/ports/out/itineraryrepo"
	"github.com/tripkit/planner-api/internal/ports/out/latency"
)

// Service manages itineraries. Activities belong to the activity store; an
// itinerary day only keeps their IDs and every read projects the current
// activity state into Day.Activities.
type Service struct {
	itineraries itineraryrepo.Repository
	activities  activityrepo.Repository
	clock       clock.Clock
	latency     latency.Simulator

	newItineraryID func() domain.ItineraryID
	newActivityID  func() domain.ActivityID
}

func NewService(itinerariesRepo itineraryrepo.Repository, activitiesRepo activityrepo.Repository, clk clock.Clock, lat latency.Simulator) *Service {
	return &Service{
		itineraries: itinerariesRepo,
		activities:  activitiesRepo,
		clock:       clk,
		latency:     lat,
		newItineraryID: func() domain.ItineraryID {
			return domain.ItineraryID("itinerary_" + uuid.NewString())
		},
		newActivityID: func() domain.ActivityID {
			return domain.ActivityID("activity_" + uuid.NewString())
		},
	}
}

// SetNewIDsForTest overrides ID generation for deterministic tests.
// Nil functions keep the current generator.
func (s *Service) SetNewIDsForTest(itinerary func() domain.ItineraryID, activity func() domain.ActivityID) {
	if itinerary != nil {
		s.newItineraryID = itinerary
	}
	if activity != nil {
		s.newActivityID = activity
	}
}

func itineraryNotFound() *apperr.Error {
	return apperr.NotFound("ITINERARY_NOT_FOUND", "itinerary not found")
}

func (s *Service) List(ctx context.Context) ([]domain.Itinerary, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	its, err := s.itineraries.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range its {
		if err := s.project(ctx, &its[i]); err != nil {
			return nil, err
		}
	}
	return its, nil
}

func (s *Service) GetByID(ctx context.Context, id domain.ItineraryID) (domain.Itinerary, error) {
	if err := s.latency.Wait(ctx, latency.OpGet); err != nil {
		return domain.Itinerary{}, err
	}
	it, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, itineraryrepo.ErrNotFound) {
			return domain.Itinerary{}, itineraryNotFound()
		}
		return domain.Itinerary{}, err
	}
	if err := s.project(ctx, &it); err != nil {
		return domain.Itinerary{}, err
	}
	return it, nil
}

// GetByTripID returns the trip's itinerary. A trip without one gets the
// generated single-day arrival template, which is stored so later reads and
// activity updates see the same itinerary. It never returns NotFound.
func (s *Service) GetByTripID(ctx context.Context, tripID domain.TripID) (domain.Itinerary, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return domain.Itinerary{}, err
	}
	it, err := s.itineraries.GetByTripID(ctx, tripID)
	if err == nil {
		if err := s.project(ctx, &it); err != nil {
			return domain.Itinerary{}, err
		}
		return it, nil
	}
	if !errors.Is(err, itineraryrepo.ErrNotFound) {
		return domain.Itinerary{}, err
	}

	if err := s.latency.Wait(ctx, latency.OpGenerate); err != nil {
		return domain.Itinerary{}, err
	}
	it, err = s.store(ctx, generatedInput(tripID, s.clock.Now()))
	if errors.Is(err, apperr.ErrConflict) {
		// Another caller generated it first; use theirs.
		it, err = s.itineraries.GetByTripID(ctx, tripID)
		if err == nil {
			err = s.project(ctx, &it)
		}
	}
	if err != nil {
		return domain.Itinerary{}, err
	}
	return it, nil
}

// Create stores an itinerary and its day activities. A trip can have only one
// itinerary.
func (s *Service) Create(ctx context.Context, in CreateItineraryInput) (domain.Itinerary, error) {
	if err := s.latency.Wait(ctx, latency.OpCreate); err != nil {
		return domain.Itinerary{}, err
	}
	if in.TripID == "" {
		return domain.Itinerary{}, apperr.Field("tripId", "is required")
	}
	if in.Status == "" {
		in.Status = domain.ItineraryStatusDraft
	}
	if !in.Status.Valid() {
		return domain.Itinerary{}, apperr.Field("status", "must be draft or confirmed")
	}
	if in.TotalCost.IsNegative() {
		return domain.Itinerary{}, apperr.Field("totalCost", "must be >= 0")
	}
	return s.store(ctx, in)
}

func (s *Service) Update(ctx context.Context, id domain.ItineraryID, in UpdateItineraryInput) (domain.Itinerary, error) {
	if err := s.latency.Wait(ctx, latency.OpUpdate); err != nil {
		return domain.Itinerary{}, err
	}

	var (
		days   []domain.Day
		owners map[domain.ActivityID]domain.TripID
	)
	if in.Days.HasValue() {
		var err error
		if days, owners, err = s.resolveDays(ctx, in.Days.Value()); err != nil {
			return domain.Itinerary{}, err
		}
	}

	it, err := s.itineraries.Update(ctx, id, func(it *domain.Itinerary) error {
		if in.Status.IsSpecified() {
			if in.Status.IsNull() || !in.Status.Value().Valid() {
				return apperr.Field("status", "must be draft or confirmed")
			}
			it.Status = in.Status.Value()
		}
		if in.TotalCost.IsSpecified() {
			if in.TotalCost.IsNull() || in.TotalCost.Value().IsNegative() {
				return apperr.Field("totalCost", "must be >= 0")
			}
			it.TotalCost = in.TotalCost.Value()
		}
		if in.Days.IsSpecified() {
			for id, tripID := range owners {
				if tripID != it.TripID {
					return apperr.Validation("foreign activity", map[string]any{"days": map[string]any{"activityId": string(id), "problem": "belongs to another trip"}})
				}
			}
			it.Days = days
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, itineraryrepo.ErrNotFound) {
			return domain.Itinerary{}, itineraryNotFound()
		}
		return domain.Itinerary{}, err
	}
	if err := s.project(ctx, &it); err != nil {
		return domain.Itinerary{}, err
	}
	return it, nil
}

// Delete removes the itinerary. Its activities stay in the activity store.
func (s *Service) Delete(ctx context.Context, id domain.ItineraryID) error {
	if err := s.latency.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}
	if err := s.itineraries.Delete(ctx, id); err != nil {
		if errors.Is(err, itineraryrepo.ErrNotFound) {
			return itineraryNotFound()
		}
		return err
	}
	return nil
}

// store writes the day activities to the activity store, then the itinerary.
// If the itinerary cannot be stored the new activities are removed again.
func (s *Service) store(ctx context.Context, in CreateItineraryInput) (domain.Itinerary, error) {
	now := s.clock.Now()
	it := domain.Itinerary{
		ID:        s.newItineraryID(),
		TripID:    in.TripID,
		Status:    in.Status,
		TotalCost: in.TotalCost,
		Days:      make([]domain.Day, 0, len(in.Days)),
		CreatedAt: now,
	}

	var created []domain.ActivityID
	rollback := func() {
		for _, id := range created {
			_ = s.activities.Delete(ctx, id)
		}
	}

	for i, d := range in.Days {
		day := domain.Day{
			Date:          d.Date,
			Description:   d.Description,
			EstimatedCost: d.EstimatedCost,
			ActivityIDs:   make([]domain.ActivityID, 0, len(d.Activities)),
		}
		for _, na := range d.Activities {
			a := domain.Activity{
				ID:          s.newActivityID(),
				TripID:      in.TripID,
				Name:        domain.NormalizeHumanName(na.Name),
				Type:        na.Type,
				StartTime:   domain.CanonicalStartTime(na.StartTime),
				Duration:    na.Duration,
				Cost:        na.Cost,
				Location:    na.Location,
				Description: na.Description,
				CreatedAt:   now,
			}
			if details := domain.ValidateActivity(a); details != nil {
				rollback()
				return domain.Itinerary{}, apperr.Validation("invalid activity", map[string]any{"days": map[string]any{"index": i, "activity": details}})
			}
			if err := s.activities.Create(ctx, a); err != nil {
				rollback()
				if errors.Is(err, activityrepo.ErrAlreadyExists) {
					return domain.Itinerary{}, apperr.Conflict("ACTIVITY_ID_CONFLICT", "activity id conflict")
				}
				return domain.Itinerary{}, err
			}
			created = append(created, a.ID)
			day.ActivityIDs = append(day.ActivityIDs, a.ID)
		}
		it.Days = append(it.Days, day)
	}

	if err := s.itineraries.Create(ctx, it); err != nil {
		rollback()
		if errors.Is(err, itineraryrepo.ErrAlreadyExists) {
			return domain.Itinerary{}, apperr.Conflict("ITINERARY_EXISTS", "trip already has an itinerary")
		}
		return domain.Itinerary{}, err
	}
	if err := s.project(ctx, &it); err != nil {
		return domain.Itinerary{}, err
	}
	return it, nil
}

// resolveDays checks that every referenced activity exists and is used at
// most once across the days. It returns the trip owning each activity.
func (s *Service) resolveDays(ctx context.Context, in []DayUpdate) ([]domain.Day, map[domain.ActivityID]domain.TripID, error) {
	days := make([]domain.Day, 0, len(in))
	owners := map[domain.ActivityID]domain.TripID{}
	for i, d := range in {
		for _, id := range d.ActivityIDs {
			if _, dup := owners[id]; dup {
				return nil, nil, apperr.Validation("duplicate activity", map[string]any{"days": map[string]any{"index": i, "activityIds": "must not repeat an activity"}})
			}
			owners[id] = ""
		}
		found, err := s.activities.ListByIDs(ctx, d.ActivityIDs)
		if err != nil {
			return nil, nil, err
		}
		if len(found) != len(d.ActivityIDs) {
			return nil, nil, apperr.Validation("unknown activity", map[string]any{"days": map[string]any{"index": i, "activityIds": "must reference existing activities"}})
		}
		for _, a := range found {
			owners[a.ID] = a.TripID
		}
		days = append(days, domain.Day{
			Date:          d.Date,
			Description:   d.Description,
			EstimatedCost: d.EstimatedCost,
			ActivityIDs:   append([]domain.ActivityID(nil), d.ActivityIDs...),
		})
	}
	return days, owners, nil
}

// project fills Day.Activities from the activity store, ordered by start time.
// Activities deleted since the day was stored are skipped.
func (s *Service) project(ctx context.Context, it *domain.Itinerary) error {
	for i := range it.Days {
		as, err := s.activities.ListByIDs(ctx, it.Days[i].ActivityIDs)
		if err != nil {
			return err
		}
		domain.SortActivitiesByStart(as)
		it.Days[i].Activities = as
	}
	return nil
}
