package domain

import (
	"context"
	"time"
)

type EventType string

const (
	// EventType_BOOK_CREATED represents the event when a book is added to the catalog.
	EventType_BOOK_CREATED EventType = "BOOK.CREATED"
	// EventType_BOOK_UPDATED represents the event when a book is updated.
	EventType_BOOK_UPDATED EventType = "BOOK.UPDATED"
	// EventType_BOOK_DELETED represents the event when a book is removed from the catalog.
	EventType_BOOK_DELETED EventType = "BOOK.DELETED"
	// EventType_LOAN_CREATED represents the event when a book is lent to a customer.
	EventType_LOAN_CREATED EventType = "LOAN.CREATED"
	// EventType_LOAN_RETURNED represents the event when a lent book comes back.
	EventType_LOAN_RETURNED EventType = "LOAN.RETURNED"
	// EventType_LOAN_LATE represents the event when a loan is overdue.
	EventType_LOAN_LATE EventType = "LOAN.LATE"
)

// BookEvent represents a domain event about a book.
type BookEvent struct {
	Type      EventType `json:"type"`
	BookID    int64     `json:"book_id"`
	ISBN      string    `json:"isbn"`
	CreatedAt time.Time `json:"created_at"`
}

// LoanEvent represents a domain event about a loan.
type LoanEvent struct {
	Type      EventType `json:"type"`
	LoanID    int64     `json:"loan_id"`
	BookID    int64     `json:"book_id"`
	ISBN      string    `json:"isbn"`
	Customer  string    `json:"customer"`
	LoanDate  time.Time `json:"loan_date"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLoanEvent builds a LoanEvent of the given type from a loan.
func NewLoanEvent(eventType EventType, loan Loan, now time.Time) LoanEvent {
	return LoanEvent{
		Type:      eventType,
		LoanID:    loan.ID,
		BookID:    loan.Book.ID,
		ISBN:      loan.Book.ISBN,
		Customer:  loan.Customer,
		LoanDate:  loan.LoanDate,
		CreatedAt: now,
	}
}

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	PublishEvent(ctx context.Context, event OutboxEvent) error
}
