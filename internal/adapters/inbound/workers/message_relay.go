package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-library/internal/usecases"
)

// MessageRelay periodically drains the outbox into Pub/Sub. A full batch is followed by
// another one right away instead of waiting for the next tick, unless some of its events
// failed to publish: retries are spaced one tick apart.
type MessageRelay struct {
	RelayOutbox         usecases.RelayOutbox `resolve:""`
	Logger              *log.Logger          `resolve:""`
	Interval            time.Duration        `config:"FETCH_OUTBOX_INTERVAL" default:"500ms"`
	BatchSize           int                  `config:"OUTBOX_BATCH_SIZE" default:"100"`
	workerExecutionChan chan usecases.RelayStats
}

func (mr MessageRelay) Run(ctx context.Context) error {
	mr.Logger.Printf("MessageRelay: running every %s", mr.Interval)
	ticker := time.NewTicker(mr.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mr.drain(ctx)
		case <-ctx.Done():
			mr.Logger.Println("MessageRelay: stopping...")
			return nil
		}
	}
}

// drain relays batches until one comes back smaller than BatchSize, fails, or has events
// left pending for a retry.
func (mr MessageRelay) drain(ctx context.Context) {
	for ctx.Err() == nil {
		stats, err := mr.RelayOutbox.Execute(ctx)
		if err != nil {
			mr.Logger.Printf("MessageRelay: error processing batch: %v", err)
		} else if stats.Failed > 0 {
			mr.Logger.Printf("MessageRelay: %d event(s) marked as failed", stats.Failed)
		}
		if mr.workerExecutionChan != nil {
			mr.workerExecutionChan <- stats
		}
		if err != nil || mr.BatchSize <= 0 || stats.Retried > 0 || stats.Total() < mr.BatchSize {
			return
		}
	}
}
