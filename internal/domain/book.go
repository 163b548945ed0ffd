package domain

import (
	"context"
	"strings"
)

// Book represents a book in the library catalog.
type Book struct {
	ID     int64
	Title  string
	Author string
	ISBN   string
}

// Validate checks the required fields of the book. Every empty field produces its own
// message, in field declaration order.
func (b Book) Validate() error {
	var messages []string
	if strings.TrimSpace(b.Title) == "" {
		messages = append(messages, "title must not be empty")
	}
	if strings.TrimSpace(b.Author) == "" {
		messages = append(messages, "author must not be empty")
	}
	if strings.TrimSpace(b.ISBN) == "" {
		messages = append(messages, "isbn must not be empty")
	}
	if len(messages) > 0 {
		return NewValidationErr(messages...)
	}
	return nil
}

// BookFilter holds the optional criteria used to search books. A nil field matches any value.
type BookFilter struct {
	Title  *string
	Author *string
	ISBN   *string
}

// BookRepository defines the interface for interacting with books in the data store.
type BookRepository interface {
	// CreateBook persists a new book and returns it with the id assigned by the store.
	CreateBook(ctx context.Context, book Book) (Book, error)

	// UpdateBook overwrites the title and author of the book identified by book.ID.
	UpdateBook(ctx context.Context, book Book) error

	// DeleteBook removes the book identified by id from the data store.
	DeleteBook(ctx context.Context, id int64) error

	// GetBook retrieves a book by its id.
	GetBook(ctx context.Context, id int64) (Book, bool, error)

	// GetBookByISBN retrieves a book by its isbn.
	GetBookByISBN(ctx context.Context, isbn string) (Book, bool, error)

	// ExistsByISBN reports whether a book with the given isbn exists.
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// FindBooks returns the page of books matching the filter, plus the total number of matches.
	FindBooks(ctx context.Context, filter BookFilter, page PageRequest) (Page[Book], error)
}
