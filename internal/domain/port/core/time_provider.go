package core

import "time"

// TimeProvider abstracts the system clock. The clock is the only ambient
// state the duration operations touch; keeping it behind a port makes the
// ago/from-now projections deterministic under test.
type TimeProvider interface {
	Now() time.Time
}
