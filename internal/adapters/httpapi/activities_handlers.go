package httpapi

import (
	"net/http"

	"github.com/tripkit/planner-api/internal/app/activities"
	"github.com/tripkit/planner-api/internal/domain"
)

func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	as, err := s.svc.Activities.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activitiesFromDomain(as))
}

func (s *Server) getActivity(w http.ResponseWriter, r *http.Request) {
	a, err := s.svc.Activities.GetByID(r.Context(), pathID[domain.ActivityID](r, "activityId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activityFromDomain(a))
}

func (s *Server) createActivity(w http.ResponseWriter, r *http.Request) {
	var body CreateActivityRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	a, err := s.svc.Activities.Create(r.Context(), activities.CreateActivityInput{
		TripID:      domain.TripID(body.TripId),
		Name:        body.Name,
		Type:        domain.ActivityType(body.Type),
		StartTime:   body.StartTime,
		Duration:    body.Duration,
		Cost:        body.Cost,
		Location:    locationToDomain(body.Location),
		Description: body.Description,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, activityFromDomain(a))
}

func (s *Server) updateActivity(w http.ResponseWriter, r *http.Request) {
	var body UpdateActivityRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	in := activities.UpdateActivityInput{
		Name:        optionalFromNullable(body.Name),
		Type:        optionalMapped(body.Type, func(v string) domain.ActivityType { return domain.ActivityType(v) }),
		StartTime:   optionalFromNullable(body.StartTime),
		Duration:    optionalFromNullable(body.Duration),
		Cost:        optionalFromNullable(body.Cost),
		Location:    optionalMapped(body.Location, func(l Location) domain.Location { return domain.Location(l) }),
		Description: optionalFromNullable(body.Description),
		Completed:   optionalFromNullable(body.Completed),
	}
	a, err := s.svc.Activities.Update(r.Context(), pathID[domain.ActivityID](r, "activityId"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activityFromDomain(a))
}

func (s *Server) deleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Activities.Delete(r.Context(), pathID[domain.ActivityID](r, "activityId")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
