// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Roll-up use cases take the clock as a
// dependency so that "now"-relative windows stay deterministic in tests.
type Clock interface {
	Now() time.Time
}
