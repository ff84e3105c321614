package clock

import "time"

// SystemClock is the production clock. Times are UTC so date-only fields
// such as an expense's default date do not depend on the host zone.
type SystemClock struct{}

func NewSystemClock() SystemClock { return SystemClock{} }

func (SystemClock) Now() time.Time { return time.Now().UTC() }
