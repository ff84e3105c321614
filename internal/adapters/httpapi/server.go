package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tripkit/planner-api/internal/app/activities"
	"github.com/tripkit/planner-api/internal/app/collaboration"
	"github.com/tripkit/planner-api/internal/app/expenses"
	"github.com/tripkit/planner-api/internal/app/itineraries"
	"github.com/tripkit/planner-api/internal/app/search"
	"github.com/tripkit/planner-api/internal/app/trips"
	"github.com/tripkit/planner-api/internal/app/users"
	"github.com/tripkit/planner-api/internal/platform/logger"
	"github.com/tripkit/planner-api/internal/platform/metrics"
	"github.com/tripkit/planner-api/internal/ports/out/idempotency"
)

// Services groups the application services the HTTP adapter delegates to.
type Services struct {
	Trips         *trips.Service
	Itineraries   *itineraries.Service
	Activities    *activities.Service
	Expenses      *expenses.Service
	Collaboration *collaboration.Service
	Search        *search.Service
	Users         *users.Service
}

// Server is the HTTP adapter. Handlers translate wire types to service inputs
// and service errors to the JSON error envelope.
type Server struct {
	svc     Services
	idem    idempotency.Store
	log     logger.Logger
	metrics *metrics.Metrics
}

// NewServer builds a Server. idem and m may be nil; booking replay and
// metrics are skipped when they are.
func NewServer(svc Services, idem idempotency.Store, log logger.Logger, m *metrics.Metrics) *Server {
	if log == nil {
		log = logger.NewNop()
	}
	return &Server{svc: svc, idem: idem, log: log, metrics: m}
}

func pathID[T ~string](r *http.Request, name string) T {
	return T(chi.URLParam(r, name))
}
