package httpapi

import (
	"net/http"

	"github.com/tripkit/planner-api/internal/app/collaboration"
	"github.com/tripkit/planner-api/internal/domain"
)

func (s *Server) createVote(w http.ResponseWriter, r *http.Request) {
	var body CreateVoteRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	v, err := s.svc.Collaboration.CreateVote(r.Context(), collaboration.CreateVoteInput{
		TripID:    domain.TripID(body.TripId),
		Title:     body.Title,
		Options:   body.Options,
		CreatedBy: body.CreatedBy,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, voteFromDomain(v))
}

func (s *Server) castVote(w http.ResponseWriter, r *http.Request) {
	var body CastVoteRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	v, err := s.svc.Collaboration.CastVote(r.Context(), pathID[domain.VoteID](r, "voteId"), body.Option)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, voteFromDomain(v))
}
