// Package adapters provides infrastructure implementations of application adapters.
package adapters

import (
	"time"

	"github.com/rental-ops/backend/internal/application/adapter"
)

// SystemClock implements adapter.Clock using the system time in UTC.
type SystemClock struct{}

// NewSystemClock creates a new SystemClock instance.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Ensure SystemClock implements adapter.Clock.
var _ adapter.Clock = (*SystemClock)(nil)
