package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	bookFields = []string{
		"id",
		"title",
		"author",
		"isbn",
	}
)

// BookRepository implements the domain.BookRepository interface using PostgreSQL as the storage backend.
type BookRepository struct {
	sb squirrel.StatementBuilderType
}

// NewBookRepository creates a new instance of BookRepository.
func NewBookRepository(br squirrel.BaseRunner) BookRepository {
	return BookRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateBook inserts a book and returns it with the id generated by the database.
func (br BookRepository) CreateBook(ctx context.Context, book domain.Book) (domain.Book, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := br.sb.
		Insert("books").
		Columns(
			"title",
			"author",
			"isbn",
		).
		Values(
			book.Title,
			book.Author,
			book.ISBN,
		).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&book.ID)

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Book{}, translateConstraintErr(err)
	}

	return book, nil
}

// UpdateBook updates the title and author of an existing book.
func (br BookRepository) UpdateBook(ctx context.Context, book domain.Book) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := br.sb.
		Update("books").
		Set("title", book.Title).
		Set("author", book.Author).
		Where(squirrel.Eq{"id": book.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteBook deletes a book by its ID.
func (br BookRepository) DeleteBook(ctx context.Context, id int64) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := br.sb.
		Delete("books").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// GetBook retrieves a book by its ID.
func (br BookRepository) GetBook(ctx context.Context, id int64) (domain.Book, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	return br.getBookWhere(spanCtx, span, squirrel.Eq{"id": id})
}

// GetBookByISBN retrieves a book by its ISBN.
func (br BookRepository) GetBookByISBN(ctx context.Context, isbn string) (domain.Book, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	return br.getBookWhere(spanCtx, span, squirrel.Eq{"isbn": isbn})
}

func (br BookRepository) getBookWhere(ctx context.Context, span trace.Span, pred squirrel.Eq) (domain.Book, bool, error) {
	var book domain.Book
	err := br.sb.
		Select(
			bookFields...,
		).
		From("books").
		Where(pred).
		QueryRowContext(ctx).
		Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.ISBN,
		)

	if err == sql.ErrNoRows {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Book{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Book{}, false, err
	}

	return book, true, nil
}

// ExistsByISBN reports whether a book with the given ISBN is stored.
func (br BookRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var one int
	err := br.sb.
		Select("1").
		From("books").
		Where(squirrel.Eq{"isbn": isbn}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(&one)

	if err == sql.ErrNoRows {
		telemetry.RecordErrorAndStatus(span, nil)
		return false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return true, nil
}

// FindBooks returns a page of books ordered by id. Every non-nil filter field is matched
// case-insensitively as a substring.
func (br BookRepository) FindBooks(ctx context.Context, filter domain.BookFilter, page domain.PageRequest) (domain.Page[domain.Book], error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("page", page.Page),
		attribute.Int("size", page.Size),
	))
	defer span.End()

	var total int64
	err := applyBookFilter(br.sb.Select("COUNT(*)").From("books"), filter).
		QueryRowContext(spanCtx).
		Scan(&total)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Page[domain.Book]{}, err
	}

	rows, err := applyBookFilter(br.sb.Select(bookFields...).From("books"), filter).
		OrderBy("id ASC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Page[domain.Book]{}, err
	}
	defer rows.Close() //nolint:errcheck

	var books []domain.Book
	for rows.Next() {
		var book domain.Book
		err := rows.Scan(
			&book.ID,
			&book.Title,
			&book.Author,
			&book.ISBN,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return domain.Page[domain.Book]{}, err
		}
		books = append(books, book)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Page[domain.Book]{}, err
	}

	return domain.Page[domain.Book]{
		Items:         books,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
	}, nil
}

// applyBookFilter adds one ILIKE predicate per non-nil filter field.
func applyBookFilter(qry squirrel.SelectBuilder, filter domain.BookFilter) squirrel.SelectBuilder {
	if filter.Title != nil {
		qry = qry.Where(squirrel.ILike{"title": containsPattern(*filter.Title)})
	}
	if filter.Author != nil {
		qry = qry.Where(squirrel.ILike{"author": containsPattern(*filter.Author)})
	}
	if filter.ISBN != nil {
		qry = qry.Where(squirrel.ILike{"isbn": containsPattern(*filter.ISBN)})
	}
	return qry
}

// InitBookRepository is a Symbiont initializer for BookRepository.
type InitBookRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the BookRepository in the dependency container.
func (ibr InitBookRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.BookRepository](NewBookRepository(ibr.DB))
	return ctx, nil
}
