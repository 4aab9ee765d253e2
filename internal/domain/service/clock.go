package service

import "time"

// Clock defines the interface for reading the current time.
// Use cases depend on this instead of time.Now so schedules are testable.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}
