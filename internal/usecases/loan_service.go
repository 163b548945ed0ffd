package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// LoanService defines the operations that lend books to customers.
type LoanService interface {
	// Create lends the referenced book. It fails with domain.ErrAlreadyLoaned when the book
	// has an unreturned loan.
	Create(ctx context.Context, loan domain.Loan) (domain.Loan, error)
	// SetReturned marks a loan as returned, or reopens it.
	SetReturned(ctx context.Context, id int64, returned bool) (domain.Loan, error)
	// Find returns a page of loans matching the filter.
	Find(ctx context.Context, filter domain.LoanFilter, page domain.PageRequest) (domain.Page[domain.Loan], error)
}

// LoanServiceImpl is the implementation of the LoanService.
type LoanServiceImpl struct {
	uow          domain.UnitOfWork
	loanRepo     domain.LoanRepository
	timeProvider domain.CurrentTimeProvider
}

// NewLoanServiceImpl creates a new instance of LoanServiceImpl.
func NewLoanServiceImpl(uow domain.UnitOfWork, loanRepo domain.LoanRepository, timeProvider domain.CurrentTimeProvider) LoanServiceImpl {
	return LoanServiceImpl{
		uow:          uow,
		loanRepo:     loanRepo,
		timeProvider: timeProvider,
	}
}

// Create persists a new loan for a book resolved by the caller. A zero LoanDate defaults to today.
func (ls LoanServiceImpl) Create(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("book_id", loan.Book.ID),
	))
	defer span.End()

	if err := loan.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Loan{}, err
	}

	now := ls.timeProvider.Now()
	if loan.LoanDate.IsZero() {
		loan.LoanDate = domain.StartOfDay(now)
	}

	var created domain.Loan
	err := ls.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		loaned, err := uow.Loan().ExistsActiveLoan(spanCtx, loan.Book.ID)
		if err != nil {
			return err
		}
		if loaned {
			return domain.ErrAlreadyLoaned
		}

		created, err = uow.Loan().CreateLoan(spanCtx, loan)
		if err != nil {
			return err
		}

		return uow.Outbox().RecordLoanEvent(spanCtx, domain.NewLoanEvent(domain.EventType_LOAN_CREATED, created, now))
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordBusinessRuleViolation(spanCtx, err)
		return domain.Loan{}, err
	}

	RecordLoanCreated(spanCtx)
	return created, nil
}

// SetReturned updates the returned flag of a loan. Reopening a loan is subject to the same
// one-active-loan rule as creating one. Setting the flag to its current value is a no-op.
func (ls LoanServiceImpl) SetReturned(ctx context.Context, id int64, returned bool) (domain.Loan, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int64("loan_id", id),
		attribute.Bool("returned", returned),
	))
	defer span.End()

	now := ls.timeProvider.Now()

	var updated domain.Loan
	err := ls.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		loan, found, err := uow.Loan().GetLoan(spanCtx, id)
		if err != nil {
			return err
		}
		if !found {
			return domain.NewNotFoundErr("loan not found")
		}

		if loan.Returned == returned {
			updated = loan
			return nil
		}

		if !returned {
			loaned, err := uow.Loan().ExistsActiveLoan(spanCtx, loan.Book.ID)
			if err != nil {
				return err
			}
			if loaned {
				return domain.ErrAlreadyLoaned
			}
		}

		loan.Returned = returned
		if err := uow.Loan().UpdateLoan(spanCtx, loan); err != nil {
			return err
		}
		updated = loan

		if !returned {
			return nil
		}
		return uow.Outbox().RecordLoanEvent(spanCtx, domain.NewLoanEvent(domain.EventType_LOAN_RETURNED, loan, now))
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordBusinessRuleViolation(spanCtx, err)
		return domain.Loan{}, err
	}

	return updated, nil
}

// Find returns the requested page of loans matching every non-nil filter field.
func (ls LoanServiceImpl) Find(ctx context.Context, filter domain.LoanFilter, page domain.PageRequest) (domain.Page[domain.Loan], error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := page.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Page[domain.Loan]{}, err
	}

	loans, err := ls.loanRepo.FindLoans(spanCtx, filter, page)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Page[domain.Loan]{}, err
	}
	return loans, nil
}

// InitLoanService initializes the LoanService and registers it in the dependency container.
type InitLoanService struct {
	Uow          domain.UnitOfWork          `resolve:""`
	LoanRepo     domain.LoanRepository      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the LoanServiceImpl and registers it in the dependency container.
func (ils InitLoanService) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[LoanService](NewLoanServiceImpl(ils.Uow, ils.LoanRepo, ils.TimeProvider))
	return ctx, nil
}
