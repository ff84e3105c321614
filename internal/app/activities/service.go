package activities

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tripkit/planner-api/internal/app/apperr"
	"github.com/tripkit/planner-api/internal/domain"
	"github.com/tripkit/planner-api/internal/ports/out/activityrepo"
	"github.com/tripkit/planner-api/internal/ports/out/clock"
	"github.com/tripkit/planner-api/internal/ports/out/latency"
)

type Service struct {
	activities activityrepo.Repository
	clock      clock.Clock
	latency    latency.Simulator

	newActivityID func() domain.ActivityID
}

func NewService(activitiesRepo activityrepo.Repository, clk clock.Clock, lat latency.Simulator) *Service {
	return &Service{
		activities: activitiesRepo,
		clock:      clk,
		latency:    lat,
		newActivityID: func() domain.ActivityID {
			return domain.ActivityID("activity_" + uuid.NewString())
		},
	}
}

// SetNewActivityIDForTest overrides activity ID generation for deterministic tests.
func (s *Service) SetNewActivityIDForTest(fn func() domain.ActivityID) {
	if fn != nil {
		s.newActivityID = fn
	}
}

func activityNotFound() *apperr.Error {
	return apperr.NotFound("ACTIVITY_NOT_FOUND", "activity not found")
}

func (s *Service) List(ctx context.Context) ([]domain.Activity, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	return s.activities.List(ctx)
}

func (s *Service) ListByTripID(ctx context.Context, tripID domain.TripID) ([]domain.Activity, error) {
	if err := s.latency.Wait(ctx, latency.OpList); err != nil {
		return nil, err
	}
	return s.activities.ListByTrip(ctx, tripID)
}

func (s *Service) GetByID(ctx context.Context, id domain.ActivityID) (domain.Activity, error) {
	if err := s.latency.Wait(ctx, latency.OpGet); err != nil {
		return domain.Activity{}, err
	}
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, activityrepo.ErrNotFound) {
			return domain.Activity{}, activityNotFound()
		}
		return domain.Activity{}, err
	}
	return a, nil
}

// Create stores a new, not yet completed activity.
func (s *Service) Create(ctx context.Context, in CreateActivityInput) (domain.Activity, error) {
	if err := s.latency.Wait(ctx, latency.OpCreate); err != nil {
		return domain.Activity{}, err
	}

	a := domain.Activity{
		ID:          s.newActivityID(),
		TripID:      in.TripID,
		Name:        domain.NormalizeHumanName(in.Name),
		Type:        in.Type,
		StartTime:   domain.CanonicalStartTime(in.StartTime),
		Duration:    in.Duration,
		Cost:        in.Cost,
		Location:    in.Location,
		Description: in.Description,
		Completed:   false,
		CreatedAt:   s.clock.Now(),
	}
	if details := domain.ValidateActivity(a); details != nil {
		return domain.Activity{}, apperr.Validation("invalid activity", details)
	}
	if err := s.activities.Create(ctx, a); err != nil {
		if errors.Is(err, activityrepo.ErrAlreadyExists) {
			return domain.Activity{}, apperr.Conflict("ACTIVITY_ID_CONFLICT", "activity id conflict")
		}
		return domain.Activity{}, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id domain.ActivityID, in UpdateActivityInput) (domain.Activity, error) {
	if err := s.latency.Wait(ctx, latency.OpUpdate); err != nil {
		return domain.Activity{}, err
	}

	a, err := s.activities.Update(ctx, id, func(a *domain.Activity) error {
		if err := applyPatch(a, in); err != nil {
			return err
		}
		if details := domain.ValidateActivity(*a); details != nil {
			return apperr.Validation("invalid activity", details)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, activityrepo.ErrNotFound) {
			return domain.Activity{}, activityNotFound()
		}
		return domain.Activity{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id domain.ActivityID) error {
	if err := s.latency.Wait(ctx, latency.OpDelete); err != nil {
		return err
	}
	if err := s.activities.Delete(ctx, id); err != nil {
		if errors.Is(err, activityrepo.ErrNotFound) {
			return activityNotFound()
		}
		return err
	}
	return nil
}

func applyPatch(a *domain.Activity, in UpdateActivityInput) error {
	if in.Name.IsSpecified() {
		if in.Name.IsNull() {
			return apperr.Field("name", "cannot be null")
		}
		a.Name = domain.NormalizeHumanName(in.Name.Value())
	}
	if in.Type.IsSpecified() {
		if in.Type.IsNull() {
			return apperr.Field("type", "cannot be null")
		}
		a.Type = in.Type.Value()
	}
	if in.StartTime.IsSpecified() {
		a.StartTime = domain.CanonicalStartTime(in.StartTime.Value())
	}
	if in.Duration.IsSpecified() {
		if in.Duration.IsNull() {
			return apperr.Field("duration", "cannot be null")
		}
		a.Duration = in.Duration.Value()
	}
	if in.Cost.IsSpecified() {
		if in.Cost.IsNull() {
			return apperr.Field("cost", "cannot be null")
		}
		a.Cost = in.Cost.Value()
	}
	if in.Location.IsSpecified() {
		a.Location = in.Location.Value()
	}
	if in.Description.IsSpecified() {
		a.Description = in.Description.Value()
	}
	if in.Completed.IsSpecified() {
		if in.Completed.IsNull() {
			return apperr.Field("completed", "cannot be null")
		}
		a.Completed = in.Completed.Value()
	}
	return nil
}
