// Package lifecycle holds shared startup and shutdown settings.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (database ping, migrations) and graceful shutdown.
const DefaultTimeout = 15 * time.Second
