// Package clock provides the system implementation of the domain Clock service.
package clock

import (
	"time"

	"excerpta/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a Clock backed by time.Now.
func NewSystemClock() service.Clock {
	return &systemClock{}
}

// Now returns the current time.
func (c *systemClock) Now() time.Time {
	return time.Now()
}
