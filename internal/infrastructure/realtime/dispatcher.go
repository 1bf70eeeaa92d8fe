package realtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/courtside/internal/domain/match"
	"github.com/riskibarqy/courtside/internal/platform/logging"
)

// Subscriber consumes one snapshot batch. Errors are logged, never retried;
// the next poll delivers a fresh snapshot anyway.
type Subscriber func(ctx context.Context, fixtures []match.Fixture) error

// Dispatcher fans snapshot batches out to subscribers over a bounded worker
// pool so one slow consumer cannot stall the poll loop.
type Dispatcher struct {
	pool   *ants.Pool
	logger *logging.Logger

	mu          sync.RWMutex
	subscribers []namedSubscriber
}

type namedSubscriber struct {
	name string
	fn   Subscriber
}

func NewDispatcher(workerCount int, logger *logging.Logger) (*Dispatcher, error) {
	if workerCount < 1 {
		workerCount = 4
	}
	if logger == nil {
		logger = logging.Default()
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create dispatch pool: %w", err)
	}

	return &Dispatcher{pool: pool, logger: logger}, nil
}

func (d *Dispatcher) Subscribe(name string, fn Subscriber) {
	if fn == nil {
		return
	}
	if name == "" {
		name = "subscriber"
	}

	d.mu.Lock()
	d.subscribers = append(d.subscribers, namedSubscriber{name: name, fn: fn})
	d.mu.Unlock()
}

// Dispatch delivers one batch to every subscriber and waits for all of them.
func (d *Dispatcher) Dispatch(ctx context.Context, fixtures []match.Fixture) {
	if len(fixtures) == 0 {
		return
	}

	d.mu.RLock()
	subscribers := make([]namedSubscriber, len(d.subscribers))
	copy(subscribers, d.subscribers)
	d.mu.RUnlock()

	var workers sync.WaitGroup
	for _, subscriber := range subscribers {
		subscriber := subscriber
		workers.Add(1)
		if err := d.pool.Submit(func() {
			defer workers.Done()

			if err := subscriber.fn(ctx, fixtures); err != nil {
				d.logger.WarnContext(ctx, "snapshot subscriber failed",
					"subscriber", subscriber.name,
					"fixtures", len(fixtures),
					"error", err,
				)
			}
		}); err != nil {
			workers.Done()
			d.logger.WarnContext(ctx, "submit snapshot to dispatch pool failed",
				"subscriber", subscriber.name,
				"error", err,
			)
		}
	}
	workers.Wait()
}

func (d *Dispatcher) Close() {
	d.pool.Release()
}
