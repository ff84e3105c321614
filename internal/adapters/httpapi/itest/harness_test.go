package itest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tripkit/planner-api/internal/adapters/fixtures"
	"github.com/tripkit/planner-api/internal/adapters/httpapi"
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

type testServer struct {
	baseURL string
	client  *http.Client
}

// newTestServer serves the full fixture-seeded API over a real listener with
// latency disabled.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	seed, err := fixtures.Load()
	if err != nil {
		t.Fatalf("fixtures.Load: %v", err)
	}
	clk := memclock.NewManualClock(time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC))
	lat := latency.None()

	tripRepo := memtriprepo.NewRepo(seed.Trips...)
	activityRepo := memactivityrepo.NewRepo(seed.Activities...)
	svc := httpapi.Services{
		Trips:         trips.NewService(tripRepo, clk, lat),
		Itineraries:   itineraries.NewService(memitineraryrepo.NewRepo(seed.Itineraries...), activityRepo, clk, lat),
		Activities:    activities.NewService(activityRepo, clk, lat),
		Expenses:      expenses.NewService(memexpenserepo.NewRepo(seed.Expenses...), tripRepo, clk, lat),
		Collaboration: collaboration.NewService(memvoterepo.NewRepo(seed.Votes...), clk, lat),
		Search:        search.NewService(memsearchcatalog.NewCatalog(seed.SearchItems...), clk, lat),
		Users:         users.NewService(memuserrepo.NewRepo(seed.Profile, seed.Preferences), clk, lat),
	}
	api := httpapi.NewServer(svc, memidempotency.NewStore(clk, time.Hour), logger.NewNop(), metrics.New("itest", prometheus.NewRegistry()))

	srv := httptest.NewServer(httpapi.NewRouter(api))
	t.Cleanup(srv.Close)

	return &testServer{
		baseURL: srv.URL,
		client:  srv.Client(),
	}
}

func (s *testServer) url(path string) string {
	if strings.HasPrefix(path, "/") {
		return s.baseURL + path
	}
	return s.baseURL + "/" + path
}

func (s *testServer) doJSON(t *testing.T, method string, path string, body any, headers ...string) (int, []byte, http.Header) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req, err := http.NewRequest(method, s.url(path), r)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := s.client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()
	out, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, out, resp.Header
}

type errorResponse struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestId string `json:"requestId"`
	} `json:"error"`
}

func mustUnmarshal[T any](t *testing.T, b []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v\nbody=%s", err, string(b))
	}
	return out
}

func requireStatus(t *testing.T, status int, body []byte, want int) {
	t.Helper()
	if status != want {
		t.Fatalf("status=%d want=%d body=%s", status, want, string(body))
	}
}

func requireErrorCode(t *testing.T, status int, body []byte, wantStatus int, wantCode string) {
	t.Helper()
	requireStatus(t, status, body, wantStatus)
	got := mustUnmarshal[errorResponse](t, body)
	if got.Error.Code != wantCode {
		t.Fatalf("error.code=%q want=%q body=%s", got.Error.Code, wantCode, string(body))
	}
	if got.Error.RequestId == "" {
		t.Fatalf("expected requestId in error body=%s", string(body))
	}
}

func requireHeaderPresent(t *testing.T, h http.Header, key string) {
	t.Helper()
	if strings.TrimSpace(h.Get(key)) == "" {
		t.Fatalf("expected header %q to be present", key)
	}
}
