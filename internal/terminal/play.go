package terminal

import (
	"context"
	"time"
)

// Play waits out each step's delay and hands the step to apply. It is the
// blocking counterpart of the TUI's tick-driven playback, used by the CLI.
func Play(ctx context.Context, steps []Step, apply func(Step)) error {
	for _, s := range steps {
		if s.Delay > 0 {
			timer := time.NewTimer(s.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		apply(s)
	}
	return nil
}
