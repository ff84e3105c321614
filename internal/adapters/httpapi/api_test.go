package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tripkit/planner-api/internal/adapters/fixtures"
	memactivityrepo "github.com/tripkit/planner-api/internal/adapters/memory/activityrepo"
	memclock "github.com/tripkit/planner-api/internal/adapters/memory/clock"
	memexpenserepo "github.com/tripkit/planner-api/internal/adapters/memory/expenserepo"
	memidempotency "github.com/tripkit/planner-api/internal/adapters/memory/idempotency"
	memitineraryrepo "github.com/tripkit/planner-api/internal/adapters/memory/itineraryrepo"
	memsearchcatalog "github.com/tripkit/planner-api/internal/adapters/memory/searchcatalog"
	memtriprepo "github.com/tripkit/planner-api/internal/adapters/memory/triprepo"
	memuserrepo "github.com/tripkit/planner-api/internal/adapters/memory/userrepo"
	memvoterepo "github.com/tripkit/planner-api/internal/adapters/memory/voterepo"
	"github.com/tripkit/planner-api/internal/app/activities"
	"github.com/tripkit/planner-api/internal/app/collaboration"
	"github.com/tripkit/planner-api/internal/app/expenses"
	"github.com/tripkit/planner-api/internal/app/itineraries"
	"github.com/tripkit/planner-api/internal/app/search"
	"github.com/tripkit/planner-api/internal/app/trips"
	"github.com/tripkit/planner-api/internal/app/users"
	"github.com/tripkit/planner-api/internal/platform/latency"
	"github.com/tripkit/planner-api/internal/platform/logger"
	"github.com/tripkit/planner-api/internal/platform/metrics"
)

type testAPI struct {
	h     http.Handler
	clock *memclock.ManualClock
	reg   *prometheus.Registry
	svc   Services
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	seed, err := fixtures.Load()
	if err != nil {
		t.Fatalf("fixtures.Load: %v", err)
	}
	clk := memclock.NewManualClock(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
	lat := latency.None()

	tripRepo := memtriprepo.NewRepo(seed.Trips...)
	activityRepo := memactivityrepo.NewRepo(seed.Activities...)
	svc := Services{
		Trips:         trips.NewService(tripRepo, clk, lat),
		Itineraries:   itineraries.NewService(memitineraryrepo.NewRepo(seed.Itineraries...), activityRepo, clk, lat),
		Activities:    activities.NewService(activityRepo, clk, lat),
		Expenses:      expenses.NewService(memexpenserepo.NewRepo(seed.Expenses...), tripRepo, clk, lat),
		Collaboration: collaboration.NewService(memvoterepo.NewRepo(seed.Votes...), clk, lat),
		Search:        search.NewService(memsearchcatalog.NewCatalog(seed.SearchItems...), clk, lat),
		Users:         users.NewService(memuserrepo.NewRepo(seed.Profile, seed.Preferences), clk, lat),
	}

	reg := prometheus.NewRegistry()
	srv := NewServer(svc, memidempotency.NewStore(clk, time.Hour), logger.NewNop(), metrics.New("test", reg))
	return testAPI{h: NewRouter(srv), clock: clk, reg: reg, svc: svc}
}

func (a testAPI) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)
	return rec
}

func decodeAs[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v\nbody=%s", err, rec.Body.String())
	}
	return out
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status=%d want=%d body=%s", rec.Code, want, rec.Body.String())
	}
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, wantStatus int, wantCode string) ErrorResponse {
	t.Helper()
	requireStatus(t, rec, wantStatus)
	got := decodeAs[ErrorResponse](t, rec)
	if got.Error.Code != wantCode {
		t.Fatalf("error.code=%q want=%q body=%s", got.Error.Code, wantCode, rec.Body.String())
	}
	return got
}
