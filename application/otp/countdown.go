package otp

import (
	"context"
	"time"
)

// Countdown emits the whole seconds left until expiresAt, once immediately
// and then on every tick. The channel closes after 0 is sent or when ctx ends.
func Countdown(ctx context.Context, expiresAt time.Time, now func() time.Time, tick time.Duration) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			left := remaining(expiresAt, now())
			select {
			case out <- left:
			case <-ctx.Done():
				return
			}
			if left == 0 {
				return
			}
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func remaining(expiresAt, now time.Time) int {
	left := expiresAt.Sub(now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}
