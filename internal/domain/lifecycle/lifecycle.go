// Package lifecycle holds shared start/stop parameters.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and background loops.
const DefaultTimeout = 10 * time.Second
