package clock

import "time"

// Clock stamps createdAt, booking and upload times and decides what "today"
// is for defaulted dates. Tests swap in a manual clock.
type Clock interface {
	Now() time.Time
}
