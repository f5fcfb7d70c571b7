package service

import (
	"context"
	"time"
)

// Outcome is how a countdown ended.
type Outcome int

const (
	Completed Outcome = iota
	Cancelled
)

func (o Outcome) String() string {
	if o == Completed {
		return "completed"
	}
	return "cancelled"
}

// Countdown drives a progress percentage from 0 to 100 in fixed steps over a
// fixed duration. It does no work of its own.
type Countdown struct {
	interval time.Duration
	step     int
}

// NewCountdown spreads steps ticks evenly over duration.
func NewCountdown(duration time.Duration, steps int) *Countdown {
	if steps <= 0 {
		steps = 1
	}
	if steps > 100 {
		steps = 100
	}
	interval := duration / time.Duration(steps)
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Countdown{
		interval: interval,
		step:     (100 + steps - 1) / steps,
	}
}

// Start runs the countdown in its own goroutine. onTick receives every new
// progress value, the last one being 100 on completion. onDone is called
// exactly once, after the final tick, when the countdown completes or when
// ctx or the returned cancel func stops it.
func (c *Countdown) Start(
	ctx context.Context,
	onTick func(progress int),
	onDone func(Outcome),
) context.CancelFunc {

	ctx, cancel := context.WithCancel(ctx)
	go func() {
		defer cancel()
		onDone(c.run(ctx, onTick))
	}()
	return cancel
}

func (c *Countdown) run(ctx context.Context, onTick func(int)) Outcome {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	progress := 0
	for {
		select {
		case <-ctx.Done():
			return Cancelled
		case <-ticker.C:
			progress = min(progress+c.step, 100)
			onTick(progress)
			if progress == 100 {
				return Completed
			}
		}
	}
}
