package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	loanFields = []string{
		"l.id",
		"l.customer",
		"l.loan_date",
		"l.returned",
		"b.id",
		"b.title",
		"b.author",
		"b.isbn",
	}
)

const (
	loansTable    = "loans l"
	loansBookJoin = "books b ON b.id = l.book_id"
)

// LoanRepository implements the domain.LoanRepository interface using PostgreSQL as the storage backend.
// Loans are always read together with the book they reference.
type LoanRepository struct {
	sb squirrel.StatementBuilderType
}

// NewLoanRepository creates a new instance of LoanRepository.
func NewLoanRepository(br squirrel.BaseRunner) LoanRepository {
	return LoanRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateLoan inserts a loan and returns it with the id generated by the database.
func (lr LoanRepository) CreateLoan(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("book_id", loan.Book.ID),
	))
	defer span.End()

	err := lr.sb.
		Insert("loans").
		Columns(
			"book_id",
			"customer",
			"loan_date",
			"returned",
		).
		Values(
			loan.Book.ID,
			loan.Customer,
			loan.LoanDate,
			loan.Returned,
		).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&loan.ID)

	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Loan{}, translateConstraintErr(err)
	}

	return loan, nil
}

// UpdateLoan updates the returned flag of an existing loan.
func (lr LoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := lr.sb.
		Update("loans").
		Set("returned", loan.Returned).
		Where(squirrel.Eq{"id": loan.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return translateConstraintErr(err)
	}
	return nil
}

// GetLoan retrieves a loan and its book by the loan ID.
func (lr LoanRepository) GetLoan(ctx context.Context, id int64) (domain.Loan, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	loan, err := scanLoan(lr.sb.
		Select(loanFields...).
		From(loansTable).
		Join(loansBookJoin).
		Where(squirrel.Eq{"l.id": id}).
		QueryRowContext(spanCtx))

	if err == sql.ErrNoRows {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Loan{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Loan{}, false, err
	}
	return loan, true, nil
}

// ExistsActiveLoan reports whether the book has a loan that was not returned.
func (lr LoanRepository) ExistsActiveLoan(ctx context.Context, bookID int64) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("book_id", bookID),
	))
	defer span.End()

	var one int
	err := lr.sb.
		Select("1").
		From("loans").
		Where(squirrel.Eq{"book_id": bookID, "returned": false}).
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

// FindLoans returns a page of loans ordered by id.
func (lr LoanRepository) FindLoans(ctx context.Context, filter domain.LoanFilter, page domain.PageRequest) (domain.Page[domain.Loan], error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("page", page.Page),
		attribute.Int("size", page.Size),
	))
	defer span.End()

	var total int64
	err := applyLoanFilter(lr.sb.Select("COUNT(*)").From(loansTable).Join(loansBookJoin), filter).
		QueryRowContext(spanCtx).
		Scan(&total)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Page[domain.Loan]{}, err
	}

	loans, err := lr.queryLoans(spanCtx, applyLoanFilter(lr.sb.Select(loanFields...).From(loansTable).Join(loansBookJoin), filter).
		OrderBy("l.id ASC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Page[domain.Loan]{}, err
	}

	return domain.Page[domain.Loan]{
		Items:         loans,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
	}, nil
}

// FindLateLoans returns the unreturned loans made before loanedBefore, oldest first.
func (lr LoanRepository) FindLateLoans(ctx context.Context, loanedBefore time.Time) ([]domain.Loan, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	loans, err := lr.queryLoans(spanCtx, lr.sb.
		Select(loanFields...).
		From(loansTable).
		Join(loansBookJoin).
		Where(squirrel.Eq{"l.returned": false}).
		Where(squirrel.Lt{"l.loan_date": loanedBefore}).
		OrderBy("l.loan_date ASC", "l.id ASC"))
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return loans, nil
}

func (lr LoanRepository) queryLoans(ctx context.Context, qry squirrel.SelectBuilder) ([]domain.Loan, error) {
	rows, err := qry.QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var loans []domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return loans, nil
}

// applyLoanFilter adds one predicate per non-nil filter field. The isbn is matched exactly,
// the customer as a case-insensitive substring.
func applyLoanFilter(qry squirrel.SelectBuilder, filter domain.LoanFilter) squirrel.SelectBuilder {
	if filter.ISBN != nil {
		qry = qry.Where(squirrel.Eq{"b.isbn": *filter.ISBN})
	}
	if filter.Customer != nil {
		qry = qry.Where(squirrel.ILike{"l.customer": containsPattern(*filter.Customer)})
	}
	if filter.BookID != nil {
		qry = qry.Where(squirrel.Eq{"l.book_id": *filter.BookID})
	}
	return qry
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLoan(row rowScanner) (domain.Loan, error) {
	var loan domain.Loan
	err := row.Scan(
		&loan.ID,
		&loan.Customer,
		&loan.LoanDate,
		&loan.Returned,
		&loan.Book.ID,
		&loan.Book.Title,
		&loan.Book.Author,
		&loan.Book.ISBN,
	)
	if err != nil {
		return domain.Loan{}, err
	}
	return loan, nil
}

// InitLoanRepository is a Symbiont initializer for LoanRepository.
type InitLoanRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the LoanRepository in the dependency container.
func (ilr InitLoanRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LoanRepository](NewLoanRepository(ilr.DB))
	return ctx, nil
}
