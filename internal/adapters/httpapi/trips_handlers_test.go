package httpapi

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTrips_ListAndGet(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/trips", nil)
	requireStatus(t, rec, http.StatusOK)
	list := decodeAs[[]Trip](t, rec)
	if len(list) != 3 {
		t.Fatalf("len=%d want=3", len(list))
	}

	rec = api.do(t, http.MethodGet, "/trips/trip_1", nil)
	requireStatus(t, rec, http.StatusOK)
	got := decodeAs[Trip](t, rec)
	if got.Name != "Tokyo Adventure" {
		t.Fatalf("name=%q", got.Name)
	}
	if !got.Budget.Equal(decimal.NewFromInt(3500)) {
		t.Fatalf("budget=%s", got.Budget)
	}
	if got.StartDate.Format("2006-01-02") != "2026-11-15" {
		t.Fatalf("startDate=%s", got.StartDate)
	}
	if got.Dates == "" {
		t.Fatalf("expected formatted dates")
	}
}

func TestTrips_GetUnknownIs404(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/trips/nope", nil)
	requireErrorCode(t, rec, http.StatusNotFound, "TRIP_NOT_FOUND")
}

func TestTrips_CreateUpdateDelete(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/trips", map[string]any{
		"name":         "  Patagonia  ",
		"startDate":    "2027-01-10",
		"endDate":      "2027-01-20",
		"destinations": []string{"El Chalten"},
		"budget":       5000,
		"currency":     "usd",
	})
	requireStatus(t, rec, http.StatusCreated)
	created := decodeAs[Trip](t, rec)
	if created.Name != "Patagonia" || created.Status != "upcoming" || created.Currency != "USD" {
		t.Fatalf("unexpected trip: %+v", created)
	}
	if !created.Spent.IsZero() {
		t.Fatalf("spent=%s want 0", created.Spent)
	}
	if len(created.Members) != 1 || created.Members[0].Role != "organizer" {
		t.Fatalf("members=%+v", created.Members)
	}

	// Omitted fields are left alone; null clears interests.
	rec = api.do(t, http.MethodPatch, "/trips/"+created.Id, `{"name":"Patagonia Trek","interests":null}`)
	requireStatus(t, rec, http.StatusOK)
	updated := decodeAs[Trip](t, rec)
	if updated.Name != "Patagonia Trek" {
		t.Fatalf("name=%q", updated.Name)
	}
	if !updated.Budget.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("budget changed: %s", updated.Budget)
	}
	if len(updated.Interests) != 0 {
		t.Fatalf("interests=%v", updated.Interests)
	}

	rec = api.do(t, http.MethodDelete, "/trips/"+created.Id, nil)
	requireStatus(t, rec, http.StatusNoContent)

	rec = api.do(t, http.MethodGet, "/trips/"+created.Id, nil)
	requireErrorCode(t, rec, http.StatusNotFound, "TRIP_NOT_FOUND")
}

func TestTrips_CreateValidation(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/trips", map[string]any{
		"name":      " ",
		"startDate": "2027-01-10",
		"endDate":   "2027-01-20",
	})
	got := requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
	details, err := got.Error.Details.Get()
	if err != nil {
		t.Fatalf("expected details: %v", err)
	}
	if _, ok := details["name"]; !ok {
		t.Fatalf("details=%v", details)
	}
}

func TestTrips_MalformedBodyIs400(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/trips", `{"name":`)
	requireErrorCode(t, rec, http.StatusBadRequest, "BAD_REQUEST")

	rec = api.do(t, http.MethodPatch, "/trips/trip_1", `{"nmae":"typo"}`)
	requireErrorCode(t, rec, http.StatusBadRequest, "BAD_REQUEST")
}

func TestTrips_BudgetSummary(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/trips/trip_1/budget", nil)
	requireStatus(t, rec, http.StatusOK)
	got := decodeAs[BudgetSummary](t, rec)
	if !got.TotalSpent.Equal(decimal.NewFromInt(1250)) {
		t.Fatalf("totalSpent=%s", got.TotalSpent)
	}
	if !got.Remaining.Equal(decimal.NewFromInt(2250)) {
		t.Fatalf("remaining=%s", got.Remaining)
	}
	if len(got.ByCategory) != 7 {
		t.Fatalf("byCategory=%d want=7", len(got.ByCategory))
	}

	rec = api.do(t, http.MethodGet, "/trips/nope/budget", nil)
	requireErrorCode(t, rec, http.StatusNotFound, "TRIP_NOT_FOUND")
}

func TestTrips_SubResources(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/trips/trip_1/activities", nil)
	requireStatus(t, rec, http.StatusOK)
	if n := len(decodeAs[[]Activity](t, rec)); n != 4 {
		t.Fatalf("activities=%d want=4", n)
	}

	rec = api.do(t, http.MethodGet, "/trips/trip_1/expenses", nil)
	requireStatus(t, rec, http.StatusOK)
	if n := len(decodeAs[[]Expense](t, rec)); n != 2 {
		t.Fatalf("expenses=%d want=2", n)
	}

	rec = api.do(t, http.MethodGet, "/trips/trip_1/votes", nil)
	requireStatus(t, rec, http.StatusOK)
	if n := len(decodeAs[[]Vote](t, rec)); n != 2 {
		t.Fatalf("votes=%d want=2", n)
	}

	rec = api.do(t, http.MethodGet, "/trips/trip_2/members", nil)
	requireStatus(t, rec, http.StatusOK)
	members := decodeAs[[]Member](t, rec)
	if len(members) != 3 {
		t.Fatalf("members=%d want=3", len(members))
	}
	if !members[0].JoinedAt.IsSpecified() {
		t.Fatalf("expected joinedAt on roster member")
	}
}

func TestTrips_InviteMember(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/trips/trip_1/invitations", map[string]any{"email": "friend@example.com"})
	requireStatus(t, rec, http.StatusCreated)
	inv := decodeAs[Invitation](t, rec)
	if inv.Status != "sent" || inv.Email != "friend@example.com" || inv.TripId != "trip_1" {
		t.Fatalf("invitation=%+v", inv)
	}

	rec = api.do(t, http.MethodPost, "/trips/trip_1/invitations", map[string]any{"email": "not an email"})
	requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
}

func TestTrips_ItineraryGeneratedOnFirstRead(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/trips/trip_3/itinerary", nil)
	requireStatus(t, rec, http.StatusOK)
	first := decodeAs[Itinerary](t, rec)
	if first.TripId != "trip_3" || len(first.Days) != 1 {
		t.Fatalf("generated itinerary=%+v", first)
	}

	rec = api.do(t, http.MethodGet, "/trips/trip_3/itinerary", nil)
	requireStatus(t, rec, http.StatusOK)
	if second := decodeAs[Itinerary](t, rec); second.Id != first.Id {
		t.Fatalf("id=%q want=%q", second.Id, first.Id)
	}
}
