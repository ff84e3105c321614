package httpapi

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
)

func TestItineraries_ReadReflectsActivityUpdates(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/itineraries/itinerary_1", nil)
	requireStatus(t, rec, http.StatusOK)
	before := decodeAs[Itinerary](t, rec)
	if len(before.Days) != 2 || len(before.Days[0].Activities) != 2 {
		t.Fatalf("itinerary=%+v", before)
	}
	// Day activities come back ordered by start time.
	if before.Days[0].Activities[0].Id != "activity_1" {
		t.Fatalf("first activity=%q want=activity_1", before.Days[0].Activities[0].Id)
	}
	if before.Days[0].Activities[0].Completed {
		t.Fatalf("expected activity_1 not completed")
	}

	rec = api.do(t, http.MethodPatch, "/activities/activity_1", `{"completed":true}`)
	requireStatus(t, rec, http.StatusOK)

	rec = api.do(t, http.MethodGet, "/trips/trip_1/itinerary", nil)
	requireStatus(t, rec, http.StatusOK)
	after := decodeAs[Itinerary](t, rec)
	if !after.Days[0].Activities[0].Completed {
		t.Fatalf("itinerary did not see the activity update")
	}
}

func TestItineraries_CreateAndConflict(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	body := map[string]any{
		"tripId":    "trip_2",
		"totalCost": 120,
		"days": []map[string]any{{
			"date":          "2026-10-10",
			"description":   "Golden Circle",
			"estimatedCost": 120,
			"activities": []map[string]any{{
				"name":      "Geysir",
				"type":      "attraction",
				"startTime": "10:00",
				"duration":  90,
				"cost":      0,
			}},
		}},
	}
	rec := api.do(t, http.MethodPost, "/itineraries", body)
	requireStatus(t, rec, http.StatusCreated)
	created := decodeAs[Itinerary](t, rec)
	if created.Status != "draft" {
		t.Fatalf("status=%q want=draft", created.Status)
	}
	if len(created.Days) != 1 || len(created.Days[0].Activities) != 1 || len(created.Days[0].ActivityIds) != 1 {
		t.Fatalf("days=%+v", created.Days)
	}

	rec = api.do(t, http.MethodGet, "/activities/"+created.Days[0].ActivityIds[0], nil)
	requireStatus(t, rec, http.StatusOK)

	rec = api.do(t, http.MethodPost, "/itineraries", body)
	requireErrorCode(t, rec, http.StatusConflict, "ITINERARY_EXISTS")
}

func TestItineraries_UpdateRejectsUnknownActivity(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPatch, "/itineraries/itinerary_1", map[string]any{
		"days": []map[string]any{{"date": "2026-11-15", "estimatedCost": 0, "activityIds": []string{"missing"}}},
	})
	requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_ERROR")

	rec = api.do(t, http.MethodPatch, "/itineraries/itinerary_1", `{"status":"draft"}`)
	requireStatus(t, rec, http.StatusOK)
	if got := decodeAs[Itinerary](t, rec); got.Status != "draft" || len(got.Days) != 2 {
		t.Fatalf("itinerary=%+v", got)
	}
}

func TestItineraries_DeleteThenMissing(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodDelete, "/itineraries/itinerary_1", nil)
	requireStatus(t, rec, http.StatusNoContent)

	rec = api.do(t, http.MethodGet, "/itineraries/itinerary_1", nil)
	requireErrorCode(t, rec, http.StatusNotFound, "ITINERARY_NOT_FOUND")

	// Activities outlive their itinerary.
	rec = api.do(t, http.MethodGet, "/activities/activity_1", nil)
	requireStatus(t, rec, http.StatusOK)
}

func TestActivities_CRUD(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/activities", map[string]any{
		"tripId":    "trip_1",
		"name":      "Tsukiji Outer Market",
		"type":      "dining",
		"startTime": "07:30",
		"duration":  120,
		"cost":      30.5,
		"location":  map[string]any{"address": "Tsukiji, Tokyo", "lat": 35.665, "lng": 139.770},
	})
	requireStatus(t, rec, http.StatusCreated)
	a := decodeAs[Activity](t, rec)
	if a.Completed || a.Location == nil || !a.Cost.Equal(decimal.RequireFromString("30.5")) {
		t.Fatalf("activity=%+v", a)
	}

	rec = api.do(t, http.MethodPatch, "/activities/"+a.Id, `{"location":null,"description":"early"}`)
	requireStatus(t, rec, http.StatusOK)
	a = decodeAs[Activity](t, rec)
	if a.Location != nil || a.Description != "early" {
		t.Fatalf("activity=%+v", a)
	}

	rec = api.do(t, http.MethodDelete, "/activities/"+a.Id, nil)
	requireStatus(t, rec, http.StatusNoContent)
	rec = api.do(t, http.MethodDelete, "/activities/"+a.Id, nil)
	requireErrorCode(t, rec, http.StatusNotFound, "ACTIVITY_NOT_FOUND")
}

func TestActivities_CreateValidation(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/activities", map[string]any{
		"tripId": "trip_1",
		"name":   "Moon landing",
		"type":   "spaceship",
	})
	requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
}

func TestExpenses_CreateDefaultsAndPrepends(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/expenses", map[string]any{
		"tripId":      "trip_1",
		"amount":      42.5,
		"category":    "dining",
		"description": "Ramen night",
	})
	requireStatus(t, rec, http.StatusCreated)
	e := decodeAs[Expense](t, rec)
	if e.PaidBy.Id != "user1" {
		t.Fatalf("paidBy=%+v", e.PaidBy)
	}
	if e.Date.Format("2006-01-02") != "2026-10-01" {
		t.Fatalf("date=%s want today", e.Date.Format("2006-01-02"))
	}

	rec = api.do(t, http.MethodGet, "/trips/trip_1/expenses", nil)
	requireStatus(t, rec, http.StatusOK)
	list := decodeAs[[]Expense](t, rec)
	if len(list) != 3 || list[0].Id != e.Id {
		t.Fatalf("expected new expense first; got %d items", len(list))
	}

	rec = api.do(t, http.MethodGet, "/trips/trip_1/budget", nil)
	requireStatus(t, rec, http.StatusOK)
	if got := decodeAs[BudgetSummary](t, rec); !got.TotalSpent.Equal(decimal.RequireFromString("1292.5")) {
		t.Fatalf("totalSpent=%s", got.TotalSpent)
	}
}

func TestExpenses_Validation(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	cases := []struct {
		name string
		body map[string]any
	}{
		{name: "zero amount", body: map[string]any{"tripId": "trip_1", "amount": 0, "category": "dining"}},
		{name: "unknown category", body: map[string]any{"tripId": "trip_1", "amount": 5, "category": "souvenirs"}},
		{name: "missing trip", body: map[string]any{"amount": 5, "category": "dining"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := api.do(t, http.MethodPost, "/expenses", tc.body)
			requireErrorCode(t, rec, http.StatusUnprocessableEntity, "VALIDATION_ERROR")
		})
	}
}

func TestExpenses_UpdateAndDelete(t *testing.T) {
	t.Parallel()
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPatch, "/expenses/expense_2", `{"amount":320,"description":null}`)
	requireStatus(t, rec, http.StatusOK)
	e := decodeAs[Expense](t, rec)
	if !e.Amount.Equal(decimal.NewFromInt(320)) || e.Description != "" || e.Category != "accommodation" {
		t.Fatalf("expense=%+v", e)
	}

	rec = api.do(t, http.MethodDelete, "/expenses/expense_2", nil)
	requireStatus(t, rec, http.StatusNoContent)
	rec = api.do(t, http.MethodGet, "/expenses/expense_2", nil)
	requireErrorCode(t, rec, http.StatusNotFound, "EXPENSE_NOT_FOUND")

	rec = api.do(t, http.MethodGet, "/expenses", nil)
	requireStatus(t, rec, http.StatusOK)
	if n := len(decodeAs[[]Expense](t, rec)); n != 2 {
		t.Fatalf("expenses=%d want=2", n)
	}
}
