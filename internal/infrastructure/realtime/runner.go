package realtime

import (
	"context"
	"time"

	"github.com/riskibarqy/courtside/internal/platform/logging"
)

const defaultErrorBackoff = 5 * time.Second

// Runner drives the poll loop: each successful poll advances the cursor and
// hands non-empty batches to the dispatcher. Long-poll waiting happens on the
// gateway side, so a healthy loop re-polls immediately.
type Runner struct {
	client       *Client
	dispatcher   *Dispatcher
	errorBackoff time.Duration
	logger       *logging.Logger
}

func NewRunner(client *Client, dispatcher *Dispatcher, logger *logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}

	return &Runner{
		client:       client,
		dispatcher:   dispatcher,
		errorBackoff: defaultErrorBackoff,
		logger:       logger,
	}
}

// Run blocks until the context is canceled.
func (r *Runner) Run(ctx context.Context) {
	cursor := ""
	for {
		if ctx.Err() != nil {
			return
		}

		snapshot, err := r.client.Poll(ctx, cursor)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			r.logger.WarnContext(ctx, "live snapshot poll failed, backing off",
				"cursor", cursor,
				"error", err,
			)
			timer := time.NewTimer(r.errorBackoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			continue
		}

		cursor = snapshot.Cursor
		if len(snapshot.Fixtures) == 0 {
			continue
		}

		r.logger.InfoContext(ctx, "live snapshot received",
			"cursor", cursor,
			"fixtures", len(snapshot.Fixtures),
		)
		r.dispatcher.Dispatch(ctx, snapshot.Fixtures)
	}
}
