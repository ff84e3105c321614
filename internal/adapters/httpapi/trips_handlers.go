package httpapi

import (
	"net/http"

	"github.com/tripkit/planner-api/internal/app/trips"
	"github.com/tripkit/planner-api/internal/domain"
)

func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	ts, err := s.svc.Trips.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]Trip, 0, len(ts))
	for _, t := range ts {
		out = append(out, tripFromDomain(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	t, err := s.svc.Trips.GetByID(r.Context(), pathID[domain.TripID](r, "tripId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripFromDomain(t))
}

func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var body CreateTripRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	t, err := s.svc.Trips.Create(r.Context(), trips.CreateTripInput{
		Name:         body.Name,
		StartDate:    body.StartDate.Time,
		EndDate:      body.EndDate.Time,
		Destinations: body.Destinations,
		Budget:       body.Budget,
		Currency:     body.Currency,
		TravelStyle:  body.TravelStyle,
		Interests:    body.Interests,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripFromDomain(t))
}

func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	var body UpdateTripRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	in := trips.UpdateTripInput{
		Name:         optionalFromNullable(body.Name),
		Status:       optionalMapped(body.Status, func(v string) domain.TripStatus { return domain.TripStatus(v) }),
		StartDate:    optionalMapped(body.StartDate, dateOf),
		EndDate:      optionalMapped(body.EndDate, dateOf),
		Budget:       optionalFromNullable(body.Budget),
		Currency:     optionalFromNullable(body.Currency),
		Spent:        optionalFromNullable(body.Spent),
		Destinations: optionalFromNullable(body.Destinations),
		TravelStyle:  optionalFromNullable(body.TravelStyle),
		Interests:    optionalFromNullable(body.Interests),
	}
	t, err := s.svc.Trips.Update(r.Context(), pathID[domain.TripID](r, "tripId"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripFromDomain(t))
}

func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Trips.Delete(r.Context(), pathID[domain.TripID](r, "tripId")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getTripItinerary(w http.ResponseWriter, r *http.Request) {
	it, err := s.svc.Itineraries.GetByTripID(r.Context(), pathID[domain.TripID](r, "tripId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itineraryFromDomain(it))
}

func (s *Server) listTripActivities(w http.ResponseWriter, r *http.Request) {
	as, err := s.svc.Activities.ListByTripID(r.Context(), pathID[domain.TripID](r, "tripId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activitiesFromDomain(as))
}

func (s *Server) listTripExpenses(w http.ResponseWriter, r *http.Request) {
	es, err := s.svc.Expenses.ListByTripID(r.Context(), pathID[domain.TripID](r, "tripId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, expensesFromDomain(es))
}

func (s *Server) getTripBudget(w http.ResponseWriter, r *http.Request) {
	b, err := s.svc.Expenses.Summarize(r.Context(), pathID[domain.TripID](r, "tripId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, budgetSummaryFromDomain(b))
}

func (s *Server) listTripVotes(w http.ResponseWriter, r *http.Request) {
	vs, err := s.svc.Collaboration.ListVotes(r.Context(), pathID[domain.TripID](r, "tripId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]Vote, 0, len(vs))
	for _, v := range vs {
		out = append(out, voteFromDomain(v))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listTripMembers(w http.ResponseWriter, r *http.Request) {
	ms, err := s.svc.Collaboration.ListMembers(r.Context(), pathID[domain.TripID](r, "tripId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]Member, 0, len(ms))
	for _, m := range ms {
		out = append(out, memberFromDomain(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) inviteMember(w http.ResponseWriter, r *http.Request) {
	var body InviteMemberRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	inv, err := s.svc.Collaboration.InviteMember(r.Context(), pathID[domain.TripID](r, "tripId"), body.Email)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, invitationFromDomain(inv))
}
