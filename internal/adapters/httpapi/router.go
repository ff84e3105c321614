package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the API HTTP router.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	// Set before mounting so sub-routers inherit them.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeAPIError(w, r, http.StatusNotFound, "ROUTE_NOT_FOUND", "no such route", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeAPIError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.listTrips)
		r.Post("/", s.createTrip)
		r.Route("/{tripId}", func(r chi.Router) {
			r.Get("/", s.getTrip)
			r.Patch("/", s.updateTrip)
			r.Delete("/", s.deleteTrip)
			r.Get("/itinerary", s.getTripItinerary)
			r.Get("/activities", s.listTripActivities)
			r.Get("/expenses", s.listTripExpenses)
			r.Get("/budget", s.getTripBudget)
			r.Get("/votes", s.listTripVotes)
			r.Get("/members", s.listTripMembers)
			r.Post("/invitations", s.inviteMember)
		})
	})

	r.Route("/itineraries", func(r chi.Router) {
		r.Get("/", s.listItineraries)
		r.Post("/", s.createItinerary)
		r.Get("/{itineraryId}", s.getItinerary)
		r.Patch("/{itineraryId}", s.updateItinerary)
		r.Delete("/{itineraryId}", s.deleteItinerary)
	})

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", s.listActivities)
		r.Post("/", s.createActivity)
		r.Get("/{activityId}", s.getActivity)
		r.Patch("/{activityId}", s.updateActivity)
		r.Delete("/{activityId}", s.deleteActivity)
	})

	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", s.listExpenses)
		r.Post("/", s.createExpense)
		r.Get("/{expenseId}", s.getExpense)
		r.Patch("/{expenseId}", s.updateExpense)
		r.Delete("/{expenseId}", s.deleteExpense)
	})

	r.Post("/votes", s.createVote)
	r.Post("/votes/{voteId}/ballots", s.castVote)

	r.Get("/search", s.searchCatalog)
	r.Get("/search/recommendations", s.recommendations)
	r.Post("/search/items/{itemId}/bookings", s.bookItem)

	r.Route("/me", func(r chi.Router) {
		r.Get("/", s.getProfile)
		r.Patch("/", s.updateProfile)
		r.Get("/preferences", s.getPreferences)
		r.Patch("/preferences", s.updatePreferences)
		r.Get("/documents", s.listDocuments)
		r.Post("/documents", s.uploadDocument)
	})

	return r
}
