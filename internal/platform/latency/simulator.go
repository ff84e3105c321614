package latency

import (
	"context"
	"time"

	"github.com/tripkit/planner-api/internal/ports/out/latency"
)

// Profile maps each operation to its unscaled delay.
type Profile map[latency.Op]time.Duration

// DefaultProfile returns the delays the mock backend has always used.
func DefaultProfile() Profile {
	return Profile{
		latency.OpList:        300 * time.Millisecond,
		latency.OpGet:         200 * time.Millisecond,
		latency.OpCreate:      400 * time.Millisecond,
		latency.OpUpdate:      300 * time.Millisecond,
		latency.OpDelete:      300 * time.Millisecond,
		latency.OpSearch:      500 * time.Millisecond,
		latency.OpGenerate:    500 * time.Millisecond,
		latency.OpUpload:      500 * time.Millisecond,
		latency.OpPreferences: 200 * time.Millisecond,
		latency.OpProfile:     300 * time.Millisecond,
		latency.OpProfileEdit: 400 * time.Millisecond,
		latency.OpInvite:      400 * time.Millisecond,
		latency.OpBook:        400 * time.Millisecond,
	}
}

// Observer is told about every wait that ran to completion.
type Observer func(op string, d time.Duration)

type Option func(*Simulator)

// WithObserver registers fn to be called after each completed wait.
func WithObserver(fn Observer) Option {
	return func(s *Simulator) { s.observe = fn }
}

// Simulator implements latency.Simulator with timers.
// It is safe for concurrent use.
type Simulator struct {
	profile Profile
	scale   float64
	observe Observer
}

// New returns a simulator that waits profile[op]*scale. Ops missing from the
// profile do not wait. A scale <= 0 disables waiting entirely.
func New(profile Profile, scale float64, opts ...Option) *Simulator {
	cp := make(Profile, len(profile))
	for k, v := range profile {
		cp[k] = v
	}
	s := &Simulator{profile: cp, scale: scale}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// None returns a simulator that never waits. Tests use it.
func None() *Simulator { return New(nil, 0) }

// Delay is the scaled delay of op.
func (s *Simulator) Delay(op latency.Op) time.Duration {
	if s.scale <= 0 {
		return 0
	}
	return time.Duration(float64(s.profile[op]) * s.scale)
}

func (s *Simulator) Wait(ctx context.Context, op latency.Op) error {
	d := s.Delay(op)
	if d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if s.observe != nil {
		s.observe(string(op), d)
	}
	return nil
}
