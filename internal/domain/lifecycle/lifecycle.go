// Package lifecycle holds shared start/stop constants for application components.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of lifecycle hooks.
const DefaultTimeout = 10 * time.Second
