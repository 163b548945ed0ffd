package usecases

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// BookService defines the operations that manage the book catalog.
type BookService interface {
	// Create adds a book to the catalog. The isbn must not be registered yet.
	Create(ctx context.Context, book domain.Book) (domain.Book, error)
	// GetByID returns the book with the given id. found is false when it does not exist.
	GetByID(ctx context.Context, id int64) (domain.Book, bool, error)
	// GetByISBN returns the book with the given isbn. found is false when it does not exist.
	GetByISBN(ctx context.Context, isbn string) (domain.Book, bool, error)
	// Update overwrites the title and author of an existing book.
	Update(ctx context.Context, book domain.Book) (domain.Book, error)
	// Delete removes a book from the catalog.
	Delete(ctx context.Context, book domain.Book) error
	// Find returns a page of books matching the filter.
	Find(ctx context.Context, filter domain.BookFilter, page domain.PageRequest) (domain.Page[domain.Book], error)
}

// BookServiceImpl is the implementation of the BookService.
type BookServiceImpl struct {
	uow          domain.UnitOfWork
	bookRepo     domain.BookRepository
	timeProvider domain.CurrentTimeProvider
}

// NewBookServiceImpl creates a new instance of BookServiceImpl.
func NewBookServiceImpl(uow domain.UnitOfWork, bookRepo domain.BookRepository, timeProvider domain.CurrentTimeProvider) BookServiceImpl {
	return BookServiceImpl{
		uow:          uow,
		bookRepo:     bookRepo,
		timeProvider: timeProvider,
	}
}

// Create validates the book, checks the isbn is free and persists it.
func (bs BookServiceImpl) Create(ctx context.Context, book domain.Book) (domain.Book, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	book.ID = 0
	if err := book.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Book{}, err
	}

	now := bs.timeProvider.Now()

	var created domain.Book
	err := bs.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		exists, err := uow.Book().ExistsByISBN(spanCtx, book.ISBN)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrDuplicateISBN
		}

		created, err = uow.Book().CreateBook(spanCtx, book)
		if err != nil {
			return err
		}
		if created.ID == 0 {
			return errors.New("book store did not assign an id")
		}

		return uow.Outbox().RecordBookEvent(spanCtx, domain.BookEvent{
			Type:      domain.EventType_BOOK_CREATED,
			BookID:    created.ID,
			ISBN:      created.ISBN,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordBusinessRuleViolation(spanCtx, err)
		return domain.Book{}, err
	}

	RecordBookCreated(spanCtx)
	return created, nil
}

// GetByID returns the book with the given id.
func (bs BookServiceImpl) GetByID(ctx context.Context, id int64) (domain.Book, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	book, found, err := bs.bookRepo.GetBook(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Book{}, false, err
	}
	return book, found, nil
}

// GetByISBN returns the book with the given isbn.
func (bs BookServiceImpl) GetByISBN(ctx context.Context, isbn string) (domain.Book, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	book, found, err := bs.bookRepo.GetBookByISBN(spanCtx, isbn)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Book{}, false, err
	}
	return book, found, nil
}

// Update overwrites the title and author of the book identified by book.ID.
// The isbn of a stored book never changes.
func (bs BookServiceImpl) Update(ctx context.Context, book domain.Book) (domain.Book, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if book.ID == 0 {
		err := domain.NewInvalidArgumentErr("book id must be set to update a book")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Book{}, err
	}

	now := bs.timeProvider.Now()

	var updated domain.Book
	err := bs.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		current, found, err := uow.Book().GetBook(spanCtx, book.ID)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr("book not found")
		}

		current.Title = book.Title
		current.Author = book.Author
		if err := current.Validate(); err != nil {
			return err
		}

		if err := uow.Book().UpdateBook(spanCtx, current); err != nil {
			return err
		}
		updated = current

		return uow.Outbox().RecordBookEvent(spanCtx, domain.BookEvent{
			Type:      domain.EventType_BOOK_UPDATED,
			BookID:    current.ID,
			ISBN:      current.ISBN,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Book{}, err
	}

	return updated, nil
}

// Delete removes the book identified by book.ID. Deleting a missing book is not an error.
func (bs BookServiceImpl) Delete(ctx context.Context, book domain.Book) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if book.ID == 0 {
		err := domain.NewInvalidArgumentErr("book id must be set to delete a book")
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}

	now := bs.timeProvider.Now()

	err := bs.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		if err := uow.Book().DeleteBook(spanCtx, book.ID); err != nil {
			return err
		}

		return uow.Outbox().RecordBookEvent(spanCtx, domain.BookEvent{
			Type:      domain.EventType_BOOK_DELETED,
			BookID:    book.ID,
			ISBN:      book.ISBN,
			CreatedAt: now,
		})
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Find returns the requested page of books matching every non-nil filter field.
func (bs BookServiceImpl) Find(ctx context.Context, filter domain.BookFilter, page domain.PageRequest) (domain.Page[domain.Book], error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := page.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Page[domain.Book]{}, err
	}

	books, err := bs.bookRepo.FindBooks(spanCtx, filter, page)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Page[domain.Book]{}, err
	}
	return books, nil
}

// InitBookService initializes the BookService and registers it in the dependency container.
type InitBookService struct {
	Uow          domain.UnitOfWork          `resolve:""`
	BookRepo     domain.BookRepository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the BookServiceImpl and registers it in the dependency container.
func (ibs InitBookService) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[BookService](NewBookServiceImpl(ibs.Uow, ibs.BookRepo, ibs.TimeProvider))
	return ctx, nil
}
