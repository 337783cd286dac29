package timex

import (
	"context"
	"time"
)

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// Micros converts a whole number of microseconds to a Duration.
func Micros(us uint64) time.Duration { return time.Duration(us) * time.Microsecond }

// Sleeper waits for d and reports whether to continue (false => cancelled).
// Only the calling goroutine is suspended.
type Sleeper func(ctx context.Context, d time.Duration) bool

// Sleep is the default Sleeper. d <= 0 returns immediately.
func Sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
