// Package lifecycle holds shared constants for application start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of every
// lifecycle hook.
const DefaultTimeout = 10 * time.Second
