package task

import (
	"context"
	"time"
)

// every runs step once per period until ctx is done. The first step runs
// immediately.
func every(ctx context.Context, period time.Duration, step func()) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		step()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
