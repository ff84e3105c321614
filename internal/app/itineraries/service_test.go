package itineraries_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memactivityrepo "github.com/tripkit/planner-api/internal/adapters/memory/activityrepo"
	memclock "github.com/tripkit/planner-api/internal/adapters/memory/clock"
	memitineraryrepo "github.com/tripkit/planner-api/internal/adapters/memory/itineraryrepo"
	"github.com/tripkit/planner-api/internal/app/apperr"
	"github.com/tripkit/planner-api/internal/app/itineraries"
	"github.com/tripkit/planner-api/internal/domain"
	platlatency "github.com/tripkit/planner-api/internal/platform/latency"
)

var now = time.Date(2025, 7, 14, 16, 45, 0, 0, time.UTC)

type fixture struct {
	svc        *itineraries.Service
	activities *memactivityrepo.Repo
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	acts := memactivityrepo.NewRepo()
	svc := itineraries.NewService(memitineraryrepo.NewRepo(), acts, memclock.NewManualClock(now), platlatency.None())
	return fixture{svc: svc, activities: acts}
}

func TestService_GetByTripID_GeneratesTemplate(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	got, err := f.svc.GetByTripID(context.Background(), "trip_unknown")
	require.NoError(t, err)

	assert.Equal(t, domain.TripID("trip_unknown"), got.TripID)
	assert.Equal(t, domain.ItineraryStatusDraft, got.Status)
	assert.Equal(t, "2850", got.TotalCost.String())
	require.Len(t, got.Days, 1)

	day := got.Days[0]
	assert.Equal(t, time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC), day.Date)
	assert.Equal(t, "Arrival and City Exploration", day.Description)
	assert.Equal(t, "285", day.EstimatedCost.String())
	require.Len(t, day.Activities, 4)

	wantNames := []string{"Airport Transfer", "Hotel Check-in", "City Walking Tour", "Welcome Dinner"}
	wantTimes := []string{"10:00", "11:30", "14:00", "19:00"}
	wantCosts := []int64{35, 0, 25, 85}
	seen := map[domain.ActivityID]bool{}
	for i, a := range day.Activities {
		assert.Equal(t, wantNames[i], a.Name)
		assert.Equal(t, wantTimes[i], a.StartTime)
		assert.True(t, a.Cost.Equal(decimal.NewFromInt(wantCosts[i])), a.Name)
		assert.False(t, a.Completed)
		assert.Equal(t, domain.TripID("trip_unknown"), a.TripID)
		assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
	assert.Equal(t, domain.ActivityTypeTransport, day.Activities[0].Type)
	assert.Equal(t, "City Airport to Downtown Hotel", day.Activities[0].Location.Address)
	assert.InDelta(t, 40.7614, day.Activities[3].Location.Lat, 1e-9)

	stored, err := f.activities.ListByTrip(context.Background(), "trip_unknown")
	require.NoError(t, err)
	assert.Len(t, stored, 4)
}

func TestService_GetByTripID_StableAcrossReads(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	first, err := f.svc.GetByTripID(context.Background(), "trip_1")
	require.NoError(t, err)
	second, err := f.svc.GetByTripID(context.Background(), "trip_1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	byID, err := f.svc.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Len(t, byID.Days[0].Activities, 4)
}

func TestService_ReadsReflectActivityUpdates(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	it, err := f.svc.GetByTripID(context.Background(), "trip_1")
	require.NoError(t, err)
	dinner := it.Days[0].Activities[3]

	_, err = f.activities.Update(context.Background(), dinner.ID, func(a *domain.Activity) error {
		a.Completed = true
		a.StartTime = "08:00"
		return nil
	})
	require.NoError(t, err)

	again, err := f.svc.GetByTripID(context.Background(), "trip_1")
	require.NoError(t, err)
	first := again.Days[0].Activities[0]
	assert.Equal(t, dinner.ID, first.ID, "activities are re-sorted by start time")
	assert.True(t, first.Completed)

	require.NoError(t, f.activities.Delete(context.Background(), dinner.ID))
	after, err := f.svc.GetByID(context.Background(), it.ID)
	require.NoError(t, err)
	assert.Len(t, after.Days[0].Activities, 3)
}

func TestService_GetByTripID_ConcurrentGenerationYieldsOne(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var (
		wg  sync.WaitGroup
		ids sync.Map
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			it, err := f.svc.GetByTripID(context.Background(), "trip_race")
			if assert.NoError(t, err) {
				ids.Store(it.ID, true)
				assert.Len(t, it.Days[0].Activities, 4)
			}
		}()
	}
	wg.Wait()

	n := 0
	ids.Range(func(_, _ any) bool { n++; return true })
	assert.Equal(t, 1, n)

	stored, err := f.activities.ListByTrip(context.Background(), "trip_race")
	require.NoError(t, err)
	assert.Len(t, stored, 4, "losing generators must remove their activities")
}

func TestService_Create_RejectsSecondForTripAndRollsBack(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	var seq atomic.Int64
	f.svc.SetNewIDsForTest(nil, func() domain.ActivityID {
		return domain.ActivityID(fmt.Sprintf("activity_%d", seq.Add(1)))
	})

	in := itineraries.CreateItineraryInput{
		TripID:    "trip_1",
		TotalCost: decimal.NewFromInt(100),
		Days: []itineraries.DayInput{{
			Date:        time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
			Description: "Day one",
			Activities: []itineraries.NewActivity{
				{Name: "Dinner", Type: domain.ActivityTypeDining, StartTime: "19:00", Cost: decimal.NewFromInt(40)},
				{Name: "Breakfast", Type: domain.ActivityTypeDining, StartTime: "08:00", Cost: decimal.NewFromInt(10)},
			},
		}},
	}
	created, err := f.svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, domain.ItineraryStatusDraft, created.Status)
	assert.Equal(t, now, created.CreatedAt)
	require.Len(t, created.Days[0].Activities, 2)
	assert.Equal(t, "Breakfast", created.Days[0].Activities[0].Name)

	_, err = f.svc.Create(context.Background(), in)
	require.ErrorIs(t, err, apperr.ErrConflict)

	stored, err := f.activities.ListByTrip(context.Background(), "trip_1")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	_, err := f.svc.Create(context.Background(), itineraries.CreateItineraryInput{})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.Create(context.Background(), itineraries.CreateItineraryInput{
		TripID: "trip_1",
		Days: []itineraries.DayInput{{
			Activities: []itineraries.NewActivity{
				{Name: "Ok", Type: domain.ActivityTypeOther},
				{Name: "Bad", Type: "teleport"},
			},
		}},
	})
	require.ErrorIs(t, err, apperr.ErrValidation)

	all, err := f.activities.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestService_Update(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	it, err := f.svc.GetByTripID(context.Background(), "trip_1")
	require.NoError(t, err)
	keep := it.Days[0].Activities[2].ID

	updated, err := f.svc.Update(context.Background(), it.ID, itineraries.UpdateItineraryInput{
		Status: domain.Some(domain.ItineraryStatusConfirmed),
		Days: domain.Some([]itineraries.DayUpdate{{
			Date:          it.Days[0].Date,
			Description:   "Short day",
			EstimatedCost: decimal.NewFromInt(25),
			ActivityIDs:   []domain.ActivityID{keep},
		}}),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ItineraryStatusConfirmed, updated.Status)
	assert.True(t, updated.TotalCost.Equal(decimal.NewFromInt(2850)))
	require.Len(t, updated.Days, 1)
	require.Len(t, updated.Days[0].Activities, 1)
	assert.Equal(t, keep, updated.Days[0].Activities[0].ID)

	_, err = f.svc.Update(context.Background(), it.ID, itineraries.UpdateItineraryInput{
		Days: domain.Some([]itineraries.DayUpdate{{ActivityIDs: []domain.ActivityID{"nope"}}}),
	})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.Update(context.Background(), "missing", itineraries.UpdateItineraryInput{})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_DeleteAndList(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	it, err := f.svc.GetByTripID(context.Background(), "trip_1")
	require.NoError(t, err)

	list, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	list[0].Days[0].Activities[0].Name = "mutated"

	again, err := f.svc.GetByID(context.Background(), it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Airport Transfer", again.Days[0].Activities[0].Name)

	require.NoError(t, f.svc.Delete(context.Background(), it.ID))
	_, err = f.svc.GetByID(context.Background(), it.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.ErrorIs(t, f.svc.Delete(context.Background(), it.ID), apperr.ErrNotFound)
}

func TestService_Create_OrdersSingleDigitHoursByTimeOfDay(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	created, err := f.svc.Create(context.Background(), itineraries.CreateItineraryInput{
		TripID: "trip_1",
		Days: []itineraries.DayInput{{
			Activities: []itineraries.NewActivity{
				{Name: "Lunch", Type: domain.ActivityTypeDining, StartTime: "12:00"},
				{Name: "Breakfast", Type: domain.ActivityTypeDining, StartTime: "9:00"},
				{Name: "Museum", Type: domain.ActivityTypeAttraction, StartTime: "10:00"},
			},
		}},
	})
	require.NoError(t, err)

	acts := created.Days[0].Activities
	require.Len(t, acts, 3)
	assert.Equal(t, "Breakfast", acts[0].Name)
	assert.Equal(t, "09:00", acts[0].StartTime)
	assert.Equal(t, "Museum", acts[1].Name)
	assert.Equal(t, "Lunch", acts[2].Name)
}

func TestService_Update_RejectsForeignAndRepeatedActivities(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	a, err := f.svc.GetByTripID(context.Background(), "trip_a")
	require.NoError(t, err)
	b, err := f.svc.GetByTripID(context.Background(), "trip_b")
	require.NoError(t, err)
	own := a.Days[0].Activities[0].ID
	foreign := b.Days[0].Activities[0].ID

	_, err = f.svc.Update(context.Background(), a.ID, itineraries.UpdateItineraryInput{
		Days: domain.Some([]itineraries.DayUpdate{{ActivityIDs: []domain.ActivityID{foreign}}}),
	})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.Update(context.Background(), a.ID, itineraries.UpdateItineraryInput{
		Days: domain.Some([]itineraries.DayUpdate{{ActivityIDs: []domain.ActivityID{own, own}}}),
	})
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = f.svc.Update(context.Background(), a.ID, itineraries.UpdateItineraryInput{
		Days: domain.Some([]itineraries.DayUpdate{
			{ActivityIDs: []domain.ActivityID{own}},
			{ActivityIDs: []domain.ActivityID{own}},
		}),
	})
	require.ErrorIs(t, err, apperr.ErrValidation)

	stored, err := f.svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Days[0].Activities, 4, "rejected updates leave the itinerary unchanged")
}
