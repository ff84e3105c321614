package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_UnwrapsToKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err    *Error
		kind   error
		status int
	}{
		{NotFound("TRIP_NOT_FOUND", "trip not found"), ErrNotFound, 404},
		{AlreadyActed("ALREADY_VOTED", "already voted"), ErrAlreadyActed, 409},
		{Conflict("ITINERARY_EXISTS", "exists"), ErrConflict, 409},
		{Field("name", "must be non-empty"), ErrValidation, 422},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("op: %w", tc.err)
		if !errors.Is(wrapped, tc.kind) {
			t.Fatalf("errors.Is(%v, %v)=false", tc.err, tc.kind)
		}
		var ae *Error
		if !errors.As(wrapped, &ae) || ae.Status != tc.status {
			t.Fatalf("errors.As status=%v, want %d", ae, tc.status)
		}
	}
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	if got := (&Error{Code: "X"}).Error(); got != "X" {
		t.Fatalf("Error()=%q, want code fallback", got)
	}
	e := Field("name", "must be non-empty")
	if e.Error() != "invalid name" || e.Code != CodeValidation || e.Details["name"] != "must be non-empty" {
		t.Fatalf("Field()=%+v", e)
	}
	var nilErr *Error
	if nilErr.Error() != "" || nilErr.Unwrap() != nil {
		t.Fatalf("nil receiver should be inert")
	}
}
