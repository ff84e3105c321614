package httpapi

import (
	"net/http"

	"github.com/tripkit/planner-api/internal/app/itineraries"
	"github.com/tripkit/planner-api/internal/domain"
)

func (s *Server) listItineraries(w http.ResponseWriter, r *http.Request) {
	its, err := s.svc.Itineraries.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	out := make([]Itinerary, 0, len(its))
	for _, it := range its {
		out = append(out, itineraryFromDomain(it))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getItinerary(w http.ResponseWriter, r *http.Request) {
	it, err := s.svc.Itineraries.GetByID(r.Context(), pathID[domain.ItineraryID](r, "itineraryId"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itineraryFromDomain(it))
}

func (s *Server) createItinerary(w http.ResponseWriter, r *http.Request) {
	var body CreateItineraryRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	in := itineraries.CreateItineraryInput{
		TripID:    domain.TripID(body.TripId),
		Status:    domain.ItineraryStatus(body.Status),
		TotalCost: body.TotalCost,
	}
	for _, d := range body.Days {
		day := itineraries.DayInput{
			Date:          d.Date.Time,
			Description:   d.Description,
			EstimatedCost: d.EstimatedCost,
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, itineraries.NewActivity{
				Name:        a.Name,
				Type:        domain.ActivityType(a.Type),
				StartTime:   a.StartTime,
				Duration:    a.Duration,
				Cost:        a.Cost,
				Location:    locationToDomain(a.Location),
				Description: a.Description,
			})
		}
		in.Days = append(in.Days, day)
	}
	it, err := s.svc.Itineraries.Create(r.Context(), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, itineraryFromDomain(it))
}

func dayUpdatesToDomain(days []UpdateDayRequest) []itineraries.DayUpdate {
	out := make([]itineraries.DayUpdate, 0, len(days))
	for _, d := range days {
		du := itineraries.DayUpdate{
			Date:          d.Date.Time,
			Description:   d.Description,
			EstimatedCost: d.EstimatedCost,
		}
		for _, id := range d.ActivityIds {
			du.ActivityIDs = append(du.ActivityIDs, domain.ActivityID(id))
		}
		out = append(out, du)
	}
	return out
}

func (s *Server) updateItinerary(w http.ResponseWriter, r *http.Request) {
	var body UpdateItineraryRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	in := itineraries.UpdateItineraryInput{
		Status:    optionalMapped(body.Status, func(v string) domain.ItineraryStatus { return domain.ItineraryStatus(v) }),
		TotalCost: optionalFromNullable(body.TotalCost),
		Days:      optionalMapped(body.Days, dayUpdatesToDomain),
	}
	it, err := s.svc.Itineraries.Update(r.Context(), pathID[domain.ItineraryID](r, "itineraryId"), in)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, itineraryFromDomain(it))
}

func (s *Server) deleteItinerary(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Itineraries.Delete(r.Context(), pathID[domain.ItineraryID](r, "itineraryId")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
