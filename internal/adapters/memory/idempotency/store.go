package idempotency

import (
	"context"
	"sync"
	"time"

	clockport "github.com/tripkit/planner-api/internal/ports/out/clock"
	"github.com/tripkit/planner-api/internal/ports/out/idempotency"
)

// Store is an in-memory implementation of idempotency.Store.
// Records older than the TTL are treated as absent and dropped lazily.
// It is safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	m   map[idempotency.Fingerprint]idempotency.Record
	clk clockport.Clock
	ttl time.Duration
}

// NewStore returns a store that expires records ttl after their CreatedAt.
// A ttl <= 0 keeps records for the life of the process.
func NewStore(clk clockport.Clock, ttl time.Duration) *Store {
	return &Store{
		m:   make(map[idempotency.Fingerprint]idempotency.Record),
		clk: clk,
		ttl: ttl,
	}
}

func (s *Store) Get(ctx context.Context, fp idempotency.Fingerprint) (idempotency.Record, bool, error) {
	_ = ctx
	s.mu.RLock()
	rec, ok := s.m[fp]
	s.mu.RUnlock()
	if !ok {
		return idempotency.Record{}, false, nil
	}
	if s.expired(rec) {
		s.mu.Lock()
		if cur, still := s.m[fp]; still && s.expired(cur) {
			delete(s.m, fp)
		}
		s.mu.Unlock()
		return idempotency.Record{}, false, nil
	}
	return cloneRecord(rec), true, nil
}

func (s *Store) Put(ctx context.Context, fp idempotency.Fingerprint, rec idempotency.Record) error {
	_ = ctx
	if rec.CreatedAt.IsZero() && s.clk != nil {
		rec.CreatedAt = s.clk.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[fp] = cloneRecord(rec)
	return nil
}

func (s *Store) expired(rec idempotency.Record) bool {
	if s.ttl <= 0 || s.clk == nil {
		return false
	}
	return s.clk.Now().Sub(rec.CreatedAt) >= s.ttl
}

func cloneRecord(rec idempotency.Record) idempotency.Record {
	cp := rec
	if rec.Body != nil {
		cp.Body = append([]byte(nil), rec.Body...)
	}
	return cp
}
