package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/google/uuid"
)

var (
	outboxEventFields = []string{
		"id",
		"entity_type",
		"entity_id",
		"topic",
		"event_type",
		"payload",
		"status",
		"retry_count",
		"max_retries",
		"last_error",
		"created_at",
	}
)

// OutboxRepository implements the domain.OutboxRepository interface using PostgreSQL as the storage backend.
type OutboxRepository struct {
	sb      squirrel.StatementBuilderType
	newUUID func() uuid.UUID
}

// NewOutboxRepository creates a new instance of OutboxRepository.
func NewOutboxRepository(br squirrel.BaseRunner) OutboxRepository {
	return OutboxRepository{
		sb:      squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
		newUUID: uuid.New,
	}
}

// RecordBookEvent stores a book event for publication on the Books topic.
func (op OutboxRepository) RecordBookEvent(ctx context.Context, event domain.BookEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := op.recordEvent(spanCtx, domain.OutboxEntityType_Book, event.BookID, domain.OutboxTopic_Books, event.Type, event, event.CreatedAt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// RecordLoanEvent stores a loan event for publication on the Loans topic.
func (op OutboxRepository) RecordLoanEvent(ctx context.Context, event domain.LoanEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := op.recordEvent(spanCtx, domain.OutboxEntityType_Loan, event.LoanID, domain.OutboxTopic_Loans, event.Type, event, event.CreatedAt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func (op OutboxRepository) recordEvent(ctx context.Context, entityType domain.OutboxEntityType, entityID int64, topic domain.OutboxTopic, eventType domain.EventType, content any, createdAt time.Time) error {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	_, err = op.sb.Insert("outbox_events").
		Columns(
			outboxEventFields...,
		).
		Values(
			op.newUUID(),
			string(entityType),
			entityID,
			string(topic),
			string(eventType),
			contentJSON,
			string(domain.OutboxStatus_Pending),
			0,
			domain.DefaultOutboxMaxRetries,
			nil,
			createdAt,
		).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}

// FetchPendingEvents retrieves a batch of pending outbox events from the database.
// The rows stay locked until the surrounding transaction ends.
func (op OutboxRepository) FetchPendingEvents(ctx context.Context, limit int) ([]domain.OutboxEvent, error) {
	rows, err := op.sb.
		Select(
			outboxEventFields...,
		).
		From("outbox_events").
		Where(squirrel.Eq{"status": string(domain.OutboxStatus_Pending)}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		QueryContext(ctx)

	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var events []domain.OutboxEvent
	for rows.Next() {
		var oe domain.OutboxEvent
		err := rows.Scan(
			&oe.ID,
			&oe.EntityType,
			&oe.EntityID,
			&oe.Topic,
			&oe.EventType,
			&oe.Payload,
			&oe.Status,
			&oe.RetryCount,
			&oe.MaxRetries,
			&oe.LastError,
			&oe.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		events = append(events, oe)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// UpdateEvent updates the status, retry count, and last error of an outbox event.
func (op OutboxRepository) UpdateEvent(ctx context.Context, eventID uuid.UUID, status domain.OutboxStatus, retryCount int, lastError string) error {
	_, err := op.sb.
		Update("outbox_events").
		Set("status", string(status)).
		Set("retry_count", retryCount).
		Set("last_error", lastError).
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}

// DeleteEvent deletes an outbox event from the database.
func (op OutboxRepository) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	_, err := op.sb.
		Delete("outbox_events").
		Where(squirrel.Eq{"id": eventID}).
		ExecContext(ctx)

	return err
}
