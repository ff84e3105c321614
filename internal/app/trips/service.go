package trips

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/app/apperr"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/clock"
	"github.com/tripkit/planner-api/internal/ports/out/latency"
	"github.com/tripkit/planner-api/internal/ports/out/triprepo"
)

type Service struct {
	trips   triprepo.Repository
	clock   clock.Clock
	latency latency.Simulator

	newTripID func() domain.TripID
}

func NewService(tripsRepo triprepo.Repository, clk clock.Clock, lat latency.Simulator) *Service {
	return &Service{
		trips:   tripsRepo,
		clock:   clk,
		latency: lat,
		newTripID: func() domain.TripID {
			return domain.TripID("trip_" + uuid.NewString())
		},
	}
}

// SetNewTripIDForTest overrides trip ID generation for deterministic tests.
// It should not be used in production code.
func (s *Service) SetNewTripIDForTest(fn func() domain.TripID) {
	if fn != nil {
		s.newTripID = fn
	}
}

func tripNotFound() *apperr.Error {
	return apperr.NotFound("TRIP_NOT_FOUND", "trip not found")
}

func (s *Service) List(ctx context.Context) ([]domain.Trip, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	return s.trips.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id domain.TripID) (domain.Trip, error) {
	if err := s.latency.Wait(ctx, latency.OpGet); err != nil {
		return domain.Trip{}, err
	}
	t, err := s.trips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, triprepo.ErrNotFound) {
			return domain.Trip{}, tripNotFound()
		}
		return domain.Trip{}, err
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, in CreateTripInput) (domain.Trip, error) {
	if err := s.latency.Wait(ctx, latency.OpCreate); err != nil {
		return domain.Trip{}, err
	}

	name := domain.NormalizeHumanName(in.Name)
	if name == "" {
		return domain.Trip{}, apperr.Field("name", "must be non-empty")
	}
	if in.StartDate.IsZero() {
		return domain.Trip{}, apperr.Field("startDate", "is required")
	}
	if in.EndDate.IsZero() {
		return domain.Trip{}, apperr.Field("endDate", "is required")
	}
	cur, err := domain.NormalizeCurrency(in.Currency)
	if err != nil {
		return domain.Trip{}, apperr.Field("currency", "must be an ISO 4217 code")
	}

	now := s.clock.Now()
	organizer := domain.CurrentUser
	t := domain.Trip{
		ID:           s.newTripID(),
		Name:         name,
		Status:       domain.TripStatusUpcoming,
		StartDate:    dateOnly(in.StartDate),
		EndDate:      dateOnly(in.EndDate),
		Destinations: domain.NormalizeList(in.Destinations),
		Budget:       in.Budget,
		Currency:     cur,
		Spent:        decimal.Zero,
		TravelStyle:  in.TravelStyle,
		Interests:    domain.NormalizeList(in.Interests),
		Members:      []domain.Member{organizer},
		CreatedAt:    now,
	}
	if err := validateTrip(t); err != nil {
		return domain.Trip{}, err
	}
	t.DateRange = domain.FormatDateRange(t.StartDate, t.EndDate)

	if err := s.trips.Create(ctx, t); err != nil {
		if errors.Is(err, triprepo.ErrAlreadyExists) {
			// Extremely unlikely (UUID collision); treat as conflict.
			return domain.Trip{}, apperr.Conflict("TRIP_ID_CONFLICT", "trip id conflict")
		}
		return domain.Trip{}, err
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id domain.TripID, in UpdateTripInput) (domain.Trip, error) {
	if err := s.latency.Wait(ctx, latency.OpUpdate); err != nil {
		return domain.Trip{}, err
	}

	t, err := s.trips.Update(ctx, id, func(t *domain.Trip) error {
		return applyPatch(t, in)
	})
	if err != nil {
		if errors.Is(err, triprepo.ErrNotFound) {
			return domain.Trip{}, tripNotFound()
		}
		return domain.Trip{}, err
	}
	return t, nil
}

// Delete removes the trip only. Its itinerary, activities, expenses and votes
// stay in their stores.
func (s *Service) Delete(ctx context.Context, id domain.TripID) error {
	if err := s.latency.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}
	if err := s.trips.Delete(ctx, id); err != nil {
		if errors.Is(err, triprepo.ErrNotFound) {
			return tripNotFound()
		}
		return err
	}
	return nil
}

func applyPatch(t *domain.Trip, in UpdateTripInput) error {
	if in.Name.IsSpecified() {
		if in.Name.IsNull() {
			return apperr.Field("name", "cannot be null")
		}
		name := domain.NormalizeHumanName(in.Name.Value())
		if name == "" {
			return apperr.Field("name", "must be non-empty")
		}
		t.Name = name
	}
	if in.Status.IsSpecified() {
		if in.Status.IsNull() || !in.Status.Value().Valid() {
			return apperr.Field("status", "must be upcoming, active or completed")
		}
		t.Status = in.Status.Value()
	}

	datesChanged := false
	if in.StartDate.IsSpecified() {
		if in.StartDate.IsNull() {
			return apperr.Field("startDate", "cannot be null")
		}
		t.StartDate = dateOnly(in.StartDate.Value())
		datesChanged = true
	}
	if in.EndDate.IsSpecified() {
		if in.EndDate.IsNull() {
			return apperr.Field("endDate", "cannot be null")
		}
		t.EndDate = dateOnly(in.EndDate.Value())
		datesChanged = true
	}
	if datesChanged {
		t.DateRange = domain.FormatDateRange(t.StartDate, t.EndDate)
	}

	if in.Budget.IsSpecified() {
		if in.Budget.IsNull() {
			return apperr.Field("budget", "cannot be null")
		}
		t.Budget = in.Budget.Value()
	}
	if in.Spent.IsSpecified() {
		if in.Spent.IsNull() {
			return apperr.Field("spent", "cannot be null")
		}
		t.Spent = in.Spent.Value()
	}
	if in.Currency.IsSpecified() {
		if in.Currency.IsNull() {
			return apperr.Field("currency", "cannot be null")
		}
		cur, err := domain.NormalizeCurrency(in.Currency.Value())
		if err != nil {
			return apperr.Field("currency", "must be an ISO 4217 code")
		}
		t.Currency = cur
	}

	if in.Destinations.IsSpecified() {
		t.Destinations = nil
		if !in.Destinations.IsNull() {
			t.Destinations = domain.NormalizeList(in.Destinations.Value())
		}
	}
	if in.TravelStyle.IsSpecified() {
		t.TravelStyle = ""
		if !in.TravelStyle.IsNull() {
			t.TravelStyle = in.TravelStyle.Value()
		}
	}
	if in.Interests.IsSpecified() {
		t.Interests = nil
		if !in.Interests.IsNull() {
			t.Interests = domain.NormalizeList(in.Interests.Value())
		}
	}

	return validateTrip(*t)
}

func validateTrip(t domain.Trip) error {
	if t.EndDate.Before(t.StartDate) {
		return apperr.Validation("invalid date range", map[string]any{"endDate": "must be on or after startDate"})
	}
	if t.Budget.IsNegative() {
		return apperr.Field("budget", "must be >= 0")
	}
	if t.Spent.IsNegative() {
		return apperr.Field("spent", "must be >= 0")
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
