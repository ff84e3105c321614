package idempotency

import (
	"context"
	"testing"
	"time"

	memclock "github.com/tripkit/planner-api/internal/adapters/memory/clock"
	"github.com/tripkit/planner-api/internal/ports/out/idempotency"
)

func TestStore_PutThenGet(t *testing.T) {
	t.Parallel()

	clk := memclock.NewManualClock(time.Unix(100, 0).UTC())
	s := NewStore(clk, 0)
	fp := idempotency.Fingerprint{
		Key:      "k1",
		Method:   "POST",
		Route:    "/search/items/{itemId}/bookings",
		BodyHash: "abc123",
	}
	rec := idempotency.Record{
		StatusCode:  201,
		ContentType: "application/json",
		Body:        []byte(`{"ok":true}`),
		CreatedAt:   time.Unix(123, 0).UTC(),
	}

	if err := s.Put(context.Background(), fp, rec); err != nil {
		t.Fatalf("Put() err=%v", err)
	}

	got, ok, err := s.Get(context.Background(), fp)
	if err != nil {
		t.Fatalf("Get() err=%v", err)
	}
	if !ok {
		t.Fatalf("Get() ok=false, want true")
	}
	if got.StatusCode != rec.StatusCode || got.ContentType != rec.ContentType || string(got.Body) != string(rec.Body) {
		t.Fatalf("Get()=%+v, want %+v", got, rec)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	clk := memclock.NewManualClock(time.Unix(1000, 0).UTC())
	s := NewStore(clk, time.Minute)
	fp := idempotency.Fingerprint{Key: "k1", Method: "POST", Route: "/x"}

	// Zero CreatedAt is stamped from the clock.
	if err := s.Put(context.Background(), fp, idempotency.Record{StatusCode: 201}); err != nil {
		t.Fatalf("Put() err=%v", err)
	}

	clk.Advance(59 * time.Second)
	if _, ok, _ := s.Get(context.Background(), fp); !ok {
		t.Fatalf("Get() before ttl ok=false, want true")
	}

	clk.Advance(time.Second)
	if _, ok, _ := s.Get(context.Background(), fp); ok {
		t.Fatalf("Get() after ttl ok=true, want false")
	}
}
