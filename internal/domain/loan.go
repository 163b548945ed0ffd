package domain

import (
	"context"
	"strings"
	"time"
)

// Loan represents a book lent to a customer. The book is referenced, not owned.
type Loan struct {
	ID       int64
	Book     Book
	Customer string
	LoanDate time.Time
	Returned bool
}

// Validate checks that the loan references a resolved book and names a customer.
func (l Loan) Validate() error {
	var messages []string
	if l.Book.ID == 0 {
		messages = append(messages, "book must not be empty")
	}
	if strings.TrimSpace(l.Customer) == "" {
		messages = append(messages, "customer must not be empty")
	}
	if len(messages) > 0 {
		return NewValidationErr(messages...)
	}
	return nil
}

// IsLate reports whether the loan is still open and was made before the given instant.
func (l Loan) IsLate(loanedBefore time.Time) bool {
	return !l.Returned && l.LoanDate.Before(loanedBefore)
}

// LoanFilter holds the optional criteria used to search loans. A nil field matches any value.
type LoanFilter struct {
	ISBN     *string
	Customer *string
	BookID   *int64
}

// LoanRepository defines the interface for interacting with loans in the data store.
type LoanRepository interface {
	// CreateLoan persists a new loan and returns it with the id assigned by the store.
	CreateLoan(ctx context.Context, loan Loan) (Loan, error)

	// UpdateLoan persists the returned flag of the loan identified by loan.ID.
	UpdateLoan(ctx context.Context, loan Loan) error

	// GetLoan retrieves a loan, with its book, by id.
	GetLoan(ctx context.Context, id int64) (Loan, bool, error)

	// ExistsActiveLoan reports whether the book has an unreturned loan.
	ExistsActiveLoan(ctx context.Context, bookID int64) (bool, error)

	// FindLoans returns the page of loans matching the filter, plus the total number of matches.
	FindLoans(ctx context.Context, filter LoanFilter, page PageRequest) (Page[Loan], error)

	// FindLateLoans returns every unreturned loan made before the given instant.
	FindLateLoans(ctx context.Context, loanedBefore time.Time) ([]Loan, error)
}
