package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// RelayStats summarizes one relay execution.
type RelayStats struct {
	// Published counts events delivered to the broker and removed from the outbox.
	Published int
	// Retried counts events that failed to publish and stay pending.
	Retried int
	// Failed counts events that failed to publish and ran out of retries.
	Failed int
}

// Total returns the number of events handled in the execution.
func (s RelayStats) Total() int {
	return s.Published + s.Retried + s.Failed
}

// RelayOutbox moves the book and loan events recorded in the outbox to the event bus.
type RelayOutbox interface {
	Execute(ctx context.Context) (RelayStats, error)
}

// RelayOutboxImpl publishes pending outbox events to the event bus.
type RelayOutboxImpl struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
	logger    *log.Logger
	batchSize int
}

func NewRelayOutboxImpl(uow domain.UnitOfWork, publisher domain.EventPublisher, logger *log.Logger, batchSize int) RelayOutboxImpl {
	return RelayOutboxImpl{
		uow:       uow,
		publisher: publisher,
		logger:    logger,
		batchSize: batchSize,
	}
}

// Execute relays one batch of pending events, oldest first, inside a single transaction.
// A failed publish does not stop the batch: the event keeps its place in the outbox until
// it runs out of retries and is marked FAILED.
func (r RelayOutboxImpl) Execute(ctx context.Context) (RelayStats, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var stats RelayStats
	err := r.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		stats = RelayStats{}
		events, err := uow.Outbox().FetchPendingEvents(spanCtx, r.batchSize)
		if err != nil {
			return err
		}

		for _, event := range events {
			status, err := r.relayEvent(spanCtx, uow, event)
			if err != nil {
				return err
			}
			switch status {
			case domain.OutboxStatus_Failed:
				stats.Failed++
			case domain.OutboxStatus_Pending:
				stats.Retried++
			default:
				stats.Published++
			}
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return RelayStats{}, err
	}

	span.SetAttributes(
		attribute.Int("outbox.published", stats.Published),
		attribute.Int("outbox.retried", stats.Retried),
		attribute.Int("outbox.failed", stats.Failed),
	)
	RecordOutboxRelayed(spanCtx, stats)
	return stats, nil
}

// relayEvent publishes a single event. It returns the status the event was left in, or an
// empty status once the event was published and deleted. Only store errors are returned.
func (r RelayOutboxImpl) relayEvent(ctx context.Context, uow domain.UnitOfWork, event domain.OutboxEvent) (domain.OutboxStatus, error) {
	publishErr := r.publisher.PublishEvent(ctx, event)
	if publishErr == nil {
		return "", uow.Outbox().DeleteEvent(ctx, event.ID)
	}

	retryCount := event.RetryCount + 1
	status := domain.OutboxStatus_Pending
	if retryCount >= event.MaxRetries {
		status = domain.OutboxStatus_Failed
	}

	r.logger.Printf("RelayOutbox: publish failed for %s %s of %s %d (attempt %d/%d): %v",
		event.ID, event.EventType, event.EntityType, event.EntityID, retryCount, event.MaxRetries, publishErr)

	if err := uow.Outbox().UpdateEvent(ctx, event.ID, status, retryCount, publishErr.Error()); err != nil {
		return status, err
	}
	return status, nil
}

// InitRelayOutbox registers the RelayOutbox use case in the dependency container.
type InitRelayOutbox struct {
	Uow       domain.UnitOfWork     `resolve:""`
	Logger    *log.Logger           `resolve:""`
	Publisher domain.EventPublisher `resolve:""`
	BatchSize int                   `config:"OUTBOX_BATCH_SIZE" default:"100"`
}

func (iro InitRelayOutbox) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RelayOutbox](NewRelayOutboxImpl(iro.Uow, iro.Publisher, iro.Logger, iro.BatchSize))
	return ctx, nil
}
