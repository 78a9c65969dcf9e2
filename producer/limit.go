package producer

import (
	"context"
	"time"

	"github.com/juju/ratelimit"
)

// Limit limits the number of rows per second to the value perSecond. A new
// goroutine is started, which terminates when in is closed or the context is
// cancelled.
func Limit(ctx context.Context, perSecond float64, in <-chan Row) <-chan Row {
	fillInterval := time.Duration(float64(time.Second) / perSecond)
	bucket := ratelimit.NewBucket(fillInterval, 1)

	out := make(chan Row)

	go func() {
		defer close(out)
		for row := range in {
			timeout := bucket.Take(1)
			select {
			case <-time.After(timeout):
			case <-ctx.Done():
				return
			}

			select {
			case out <- row:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
