package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tripkit/planner-api/internal/domain"
	activityrepoport "github.com/tripkit/planner-api/internal/ports/out/activityrepo"
	expenserepoport "github.com/tripkit/planner-api/internal/ports/out/expenserepo"
	idempotencyport "github.com/tripkit/planner-api/internal/ports/out/idempotency"
	triprepoport "github.com/tripkit/planner-api/internal/ports/out/triprepo"
	voterepoport "github.com/tripkit/planner-api/internal/ports/out/voterepo"
)

type CleanupFunc = func()

type TripRepoFactory func(t *testing.T) (triprepoport.Repository, CleanupFunc)
type ActivityRepoFactory func(t *testing.T) (activityrepoport.Repository, CleanupFunc)
type ExpenseRepoFactory func(t *testing.T) (expenserepoport.Repository, CleanupFunc)
type VoteRepoFactory func(t *testing.T) (voterepoport.Repository, CleanupFunc)
type IdemStoreFactory func(t *testing.T) (idempotencyport.Store, CleanupFunc)

func RunIdempotencyStore(t *testing.T, newStore IdemStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	fp := idempotencyport.Fingerprint{
		Key:      "k-1",
		Method:   "POST",
		Route:    "/search/items/{itemId}/bookings",
		BodyHash: "",
	}
	rec := idempotencyport.Record{
		StatusCode:  0,
		ContentType: "text/plain",
		Body:        []byte("hash-abc"),
		CreatedAt:   time.Unix(123, 0).UTC(),
	}
	if err := store.Put(ctx, fp, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(ctx, fp)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if string(got.Body) != "hash-abc" || got.ContentType != "text/plain" || got.StatusCode != 0 {
		t.Fatalf("unexpected record: %+v", got)
	}

	// Overwrite semantics.
	rec2 := rec
	rec2.Body = []byte("hash-def")
	if err := store.Put(ctx, fp, rec2); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, ok, err = store.Get(ctx, fp)
	if err != nil || !ok || string(got.Body) != "hash-def" {
		t.Fatalf("expected overwritten record, got ok=%v err=%v body=%q", ok, err, string(got.Body))
	}

	// A different body hash is a different fingerprint.
	other := fp
	other.BodyHash = "zzz"
	if _, ok, err := store.Get(ctx, other); err != nil || ok {
		t.Fatalf("Get(other) ok=%v err=%v, want miss", ok, err)
	}
}

func RunTripRepo(t *testing.T, newRepo TripRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mk := func(name string) domain.Trip {
		return domain.Trip{
			ID:           domain.TripID("trip_" + uuid.NewString()),
			Name:         name,
			Status:       domain.TripStatusUpcoming,
			StartDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC),
			Destinations: []string{"Lisbon"},
			Budget:       decimal.NewFromInt(1000),
			Currency:     "EUR",
			Members:      []domain.Member{domain.CurrentUser},
			CreatedAt:    now,
		}
	}

	first := mk("First")
	second := mk("Second")
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create(first): %v", err)
	}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create(second): %v", err)
	}
	if err := repo.Create(ctx, first); !errors.Is(err, triprepoport.ErrAlreadyExists) {
		t.Fatalf("Create(dup) err=%v, want ErrAlreadyExists", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("List order=%v, want newest first", tripIDs(all))
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "First" || !got.Budget.Equal(first.Budget) || len(got.Members) != 1 {
		t.Fatalf("GetByID=%+v", got)
	}

	// Returned values are copies.
	got.Destinations[0] = "mutated"
	again, _ := repo.GetByID(ctx, first.ID)
	if again.Destinations[0] != "Lisbon" {
		t.Fatalf("store was mutated through a returned value")
	}

	updated, err := repo.Update(ctx, first.ID, func(tr *domain.Trip) error {
		tr.Name = "Renamed"
		tr.ID = "hijack"
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Renamed" || updated.ID != first.ID {
		t.Fatalf("Update=%+v", updated)
	}

	boom := errors.New("boom")
	if _, err := repo.Update(ctx, first.ID, func(tr *domain.Trip) error {
		tr.Name = "Discarded"
		return boom
	}); !errors.Is(err, boom) {
		t.Fatalf("Update(fn error) err=%v, want boom", err)
	}
	if cur, _ := repo.GetByID(ctx, first.ID); cur.Name != "Renamed" {
		t.Fatalf("failed Update was stored: name=%q", cur.Name)
	}

	if _, err := repo.Update(ctx, "missing", func(*domain.Trip) error { return nil }); !errors.Is(err, triprepoport.ErrNotFound) {
		t.Fatalf("Update(missing) err=%v, want ErrNotFound", err)
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, first.ID); !errors.Is(err, triprepoport.ErrNotFound) {
		t.Fatalf("GetByID(deleted) err=%v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, first.ID); !errors.Is(err, triprepoport.ErrNotFound) {
		t.Fatalf("Delete(again) err=%v, want ErrNotFound", err)
	}
}

func RunActivityRepo(t *testing.T, newRepo ActivityRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	tripA := domain.TripID("trip_" + uuid.NewString())
	tripB := domain.TripID("trip_" + uuid.NewString())
	mk := func(trip domain.TripID, name, start string) domain.Activity {
		return domain.Activity{
			ID:        domain.ActivityID("act_" + uuid.NewString()),
			TripID:    trip,
			Name:      name,
			Type:      domain.ActivityTypeAttraction,
			StartTime: start,
			Duration:  60,
			Cost:      decimal.NewFromInt(10),
		}
	}

	a1 := mk(tripA, "Museum", "10:00")
	a2 := mk(tripA, "Lunch", "12:00")
	b1 := mk(tripB, "Hike", "08:00")
	for _, a := range []domain.Activity{a1, a2, b1} {
		if err := repo.Create(ctx, a); err != nil {
			t.Fatalf("Create(%s): %v", a.Name, err)
		}
	}
	if err := repo.Create(ctx, a1); !errors.Is(err, activityrepoport.ErrAlreadyExists) {
		t.Fatalf("Create(dup) err=%v, want ErrAlreadyExists", err)
	}

	all, err := repo.List(ctx)
	if err != nil || len(all) != 3 || all[0].ID != a1.ID || all[2].ID != b1.ID {
		t.Fatalf("List err=%v len=%d, want creation order", err, len(all))
	}

	byTrip, err := repo.ListByTrip(ctx, tripA)
	if err != nil || len(byTrip) != 2 {
		t.Fatalf("ListByTrip err=%v len=%d, want 2", err, len(byTrip))
	}

	byIDs, err := repo.ListByIDs(ctx, []domain.ActivityID{a2.ID, "missing", a1.ID})
	if err != nil {
		t.Fatalf("ListByIDs: %v", err)
	}
	if len(byIDs) != 2 || byIDs[0].ID != a2.ID || byIDs[1].ID != a1.ID {
		t.Fatalf("ListByIDs=%v, want [a2 a1]", byIDs)
	}

	updated, err := repo.Update(ctx, a1.ID, func(a *domain.Activity) error {
		a.Completed = true
		return nil
	})
	if err != nil || !updated.Completed {
		t.Fatalf("Update err=%v completed=%v", err, updated.Completed)
	}
	if got, _ := repo.GetByID(ctx, a1.ID); !got.Completed {
		t.Fatalf("Update not visible through GetByID")
	}

	if err := repo.Delete(ctx, a1.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, a1.ID); !errors.Is(err, activityrepoport.ErrNotFound) {
		t.Fatalf("GetByID(deleted) err=%v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, a1.ID); !errors.Is(err, activityrepoport.ErrNotFound) {
		t.Fatalf("Delete(again) err=%v, want ErrNotFound", err)
	}
}

func RunExpenseRepo(t *testing.T, newRepo ExpenseRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	trip := domain.TripID("trip_" + uuid.NewString())
	mk := func(amount int64, cat domain.ExpenseCategory) domain.Expense {
		return domain.Expense{
			ID:        domain.ExpenseID("exp_" + uuid.NewString()),
			TripID:    trip,
			Amount:    decimal.NewFromInt(amount),
			Category:  cat,
			Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			PaidBy:    domain.Payer{ID: domain.CurrentUser.ID, Name: domain.CurrentUser.Name},
			SplitWith: []domain.UserID{"user1", "user2"},
		}
	}

	e1 := mk(300, domain.ExpenseCategoryAccommodation)
	e2 := mk(250, domain.ExpenseCategoryDining)
	other := mk(99, domain.ExpenseCategoryOther)
	other.TripID = "trip_other"
	for _, e := range []domain.Expense{e1, e2, other} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, e1); !errors.Is(err, expenserepoport.ErrAlreadyExists) {
		t.Fatalf("Create(dup) err=%v, want ErrAlreadyExists", err)
	}

	byTrip, err := repo.ListByTrip(ctx, trip)
	if err != nil {
		t.Fatalf("ListByTrip: %v", err)
	}
	if len(byTrip) != 2 || byTrip[0].ID != e2.ID || byTrip[1].ID != e1.ID {
		t.Fatalf("ListByTrip len=%d, want [e2 e1]", len(byTrip))
	}

	byTrip[0].SplitWith[0] = "mutated"
	if got, _ := repo.GetByID(ctx, e2.ID); got.SplitWith[0] != "user1" {
		t.Fatalf("store was mutated through a returned value")
	}

	updated, err := repo.Update(ctx, e1.ID, func(e *domain.Expense) error {
		e.Amount = decimal.NewFromInt(320)
		return nil
	})
	if err != nil || !updated.Amount.Equal(decimal.NewFromInt(320)) {
		t.Fatalf("Update err=%v amount=%s", err, updated.Amount)
	}

	if err := repo.Delete(ctx, e1.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, e1.ID); !errors.Is(err, expenserepoport.ErrNotFound) {
		t.Fatalf("GetByID(deleted) err=%v, want ErrNotFound", err)
	}
	if all, _ := repo.List(ctx); len(all) != 2 {
		t.Fatalf("List len=%d, want 2", len(all))
	}
}

func RunVoteRepo(t *testing.T, newRepo VoteRepoFactory) {
	t.Helper()
	ctx := context.Background()

	repo, cleanup := newRepo(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	trip := domain.TripID("trip_" + uuid.NewString())
	v := domain.Vote{
		ID:        domain.VoteID("vote_" + uuid.NewString()),
		TripID:    trip,
		Title:     "Dinner?",
		Options:   []string{"Sushi", "Tapas"},
		Votes:     map[string]int{"Sushi": 0, "Tapas": 0},
		CreatedBy: domain.CurrentUser.Name,
	}
	if err := repo.Create(ctx, v); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, v); !errors.Is(err, voterepoport.ErrAlreadyExists) {
		t.Fatalf("Create(dup) err=%v, want ErrAlreadyExists", err)
	}

	got, err := repo.GetByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	got.Votes["Sushi"] = 99
	if again, _ := repo.GetByID(ctx, v.ID); again.Votes["Sushi"] != 0 {
		t.Fatalf("store was mutated through a returned value")
	}

	choice := "Tapas"
	updated, err := repo.Update(ctx, v.ID, func(cur *domain.Vote) error {
		cur.Votes[choice]++
		cur.UserVote = &choice
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Votes["Tapas"] != 1 || updated.UserVote == nil || *updated.UserVote != "Tapas" {
		t.Fatalf("Update=%+v", updated)
	}

	list, err := repo.ListByTrip(ctx, trip)
	if err != nil || len(list) != 1 || list[0].Ballots() != 1 {
		t.Fatalf("ListByTrip err=%v list=%+v", err, list)
	}

	if _, err := repo.GetByID(ctx, "missing"); !errors.Is(err, voterepoport.ErrNotFound) {
		t.Fatalf("GetByID(missing) err=%v, want ErrNotFound", err)
	}
}

func tripIDs(ts []domain.Trip) []domain.TripID {
	out := make([]domain.TripID, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}
