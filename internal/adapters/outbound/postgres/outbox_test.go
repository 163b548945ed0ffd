package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const insertOutboxEvent = "INSERT INTO outbox_events (id,entity_type,entity_id,topic,event_type,payload,status,retry_count,max_retries,last_error,created_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)"

const selectPendingOutboxEvents = "SELECT id, entity_type, entity_id, topic, event_type, payload, status, retry_count, max_retries, last_error, created_at FROM outbox_events WHERE status = $1 ORDER BY created_at ASC LIMIT %d FOR UPDATE SKIP LOCKED"

func TestOutboxRepository_RecordBookEvent(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	event := domain.BookEvent{
		Type:      domain.EventType_BOOK_CREATED,
		BookID:    11,
		ISBN:      "001",
		CreatedAt: time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC),
	}
	payload := []byte(`{"type":"BOOK.CREATED","book_id":11,"isbn":"001","created_at":"2026-01-24T15:00:00Z"}`)

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertOutboxEvent).
					WithArgs(
						eventID,
						"Book",
						int64(11),
						"Books",
						"BOOK.CREATED",
						payload,
						"PENDING",
						0,
						5,
						nil,
						event.CreatedAt,
					).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(insertOutboxEvent).
					WithArgs(
						sqlmock.AnyArg(),
						"Book",
						int64(11),
						"Books",
						"BOOK.CREATED",
						sqlmock.AnyArg(),
						"PENDING",
						0,
						5,
						nil,
						event.CreatedAt,
					).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			repo.newUUID = func() uuid.UUID { return eventID }
			gotErr := repo.RecordBookEvent(context.Background(), event)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_RecordLoanEvent(t *testing.T) {
	event := domain.LoanEvent{
		Type:      domain.EventType_LOAN_CREATED,
		LoanID:    21,
		BookID:    4,
		ISBN:      "123",
		Customer:  "Fulano",
		LoanDate:  time.Date(2026, 1, 24, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC),
	}

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() // nolint:errcheck

	mock.ExpectExec(insertOutboxEvent).
		WithArgs(
			sqlmock.AnyArg(),
			"Loan",
			int64(21),
			"Loans",
			"LOAN.CREATED",
			[]byte(`{"type":"LOAN.CREATED","loan_id":21,"book_id":4,"isbn":"123","customer":"Fulano","loan_date":"2026-01-24T00:00:00Z","created_at":"2026-01-24T15:00:00Z"}`),
			"PENDING",
			0,
			5,
			nil,
			event.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewOutboxRepository(db)
	assert.NoError(t, repo.RecordLoanEvent(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_FetchPendingEvents(t *testing.T) {
	id1 := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	t1 := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		limit    int
		expect   func(sqlmock.Sqlmock)
		expected []domain.OutboxEvent
		wantErr  bool
	}{
		"success": {
			limit: 2,
			expect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(outboxEventFields).
					AddRow(
						id1,
						"Book",
						int64(11),
						"Books",
						"BOOK.CREATED",
						[]byte(`{"book_id":11}`),
						"PENDING",
						1,
						5,
						nil,
						t1,
					)
				m.ExpectQuery(fmt.Sprintf(selectPendingOutboxEvents, 2)).
					WithArgs("PENDING").
					WillReturnRows(rows)
			},
			expected: []domain.OutboxEvent{
				{
					ID:         id1,
					EntityType: domain.OutboxEntityType_Book,
					EntityID:   11,
					Topic:      domain.OutboxTopic_Books,
					EventType:  domain.EventType_BOOK_CREATED,
					Payload:    []byte(`{"book_id":11}`),
					Status:     domain.OutboxStatus_Pending,
					RetryCount: 1,
					MaxRetries: 5,
					CreatedAt:  t1,
				},
			},
		},
		"db-error": {
			limit: 1,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(fmt.Sprintf(selectPendingOutboxEvents, 1)).
					WithArgs("PENDING").
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
		"scan-error": {
			limit: 1,
			expect: func(m sqlmock.Sqlmock) {
				// invalid UUID to trigger scan error
				rows := sqlmock.NewRows(outboxEventFields).
					AddRow(
						"not-a-uuid",
						"Book",
						int64(11),
						"Books",
						"BOOK.CREATED",
						[]byte(`{}`),
						"PENDING",
						1,
						5,
						nil,
						t1,
					)
				m.ExpectQuery(fmt.Sprintf(selectPendingOutboxEvents, 1)).
					WithArgs("PENDING").
					WillReturnRows(rows)
			},
			wantErr: true,
		},
		"no-rows": {
			limit: 1,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(fmt.Sprintf(selectPendingOutboxEvents, 1)).
					WithArgs("PENDING").
					WillReturnRows(sqlmock.NewRows(outboxEventFields))
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			got, err := repo.FetchPendingEvents(context.Background(), tt.limit)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_UpdateEvent(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE outbox_events SET status = $1, retry_count = $2, last_error = $3 WHERE id = $4").
					WithArgs("FAILED", 5, "publish error", id).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("UPDATE outbox_events SET status = $1, retry_count = $2, last_error = $3 WHERE id = $4").
					WithArgs("FAILED", 5, "publish error", id).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			gotErr := repo.UpdateEvent(context.Background(), id, domain.OutboxStatus_Failed, 5, "publish error")
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOutboxRepository_DeleteEvent(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	tests := map[string]struct {
		expect func(sqlmock.Sqlmock)
		err    bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
					WithArgs(id).
					WillReturnResult(driver.RowsAffected(1))
			},
			err: false,
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec("DELETE FROM outbox_events WHERE id = $1").
					WithArgs(id).
					WillReturnError(errors.New("db error"))
			},
			err: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() // nolint:errcheck

			tt.expect(mock)

			repo := NewOutboxRepository(db)
			gotErr := repo.DeleteEvent(context.Background(), id)
			if tt.err {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
