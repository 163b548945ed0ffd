package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont-library/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NotifyLateLoans defines the interface for flagging overdue loans.
type NotifyLateLoans interface {
	// Execute records a LOAN.LATE event for every overdue loan and returns how many were found.
	Execute(ctx context.Context) (int, error)
}

// NotifyLateLoansImpl is the implementation of the NotifyLateLoans use case.
type NotifyLateLoansImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
	lateDays     int
}

// NewNotifyLateLoansImpl creates a new instance of NotifyLateLoansImpl. A loan is late once
// lateDays full days have passed since its loan date.
func NewNotifyLateLoansImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider, logger *log.Logger, lateDays int) NotifyLateLoansImpl {
	return NotifyLateLoansImpl{
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		lateDays:     lateDays,
	}
}

// Execute finds unreturned loans older than the configured number of days and records a
// LOAN.LATE event for each, in a single transaction.
func (n NotifyLateLoansImpl) Execute(ctx context.Context) (int, error) {
	now := n.timeProvider.Now()
	cutoff := domain.StartOfDay(now).AddDate(0, 0, -n.lateDays)

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("loaned_before", cutoff.Format("2006-01-02")),
	))
	defer span.End()

	notified := 0
	err := n.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		loans, err := uow.Loan().FindLateLoans(spanCtx, cutoff)
		if err != nil {
			return err
		}

		for _, loan := range loans {
			if !loan.IsLate(cutoff) {
				continue
			}
			if err := uow.Outbox().RecordLoanEvent(spanCtx, domain.NewLoanEvent(domain.EventType_LOAN_LATE, loan, now)); err != nil {
				return err
			}
			notified++
		}
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	if notified > 0 {
		n.logger.Printf("NotifyLateLoans: %d late loan(s) loaned before %s", notified, cutoff.Format("2006-01-02"))
	}
	return notified, nil
}

// InitNotifyLateLoans initializes the NotifyLateLoans use case and registers it in the dependency container.
type InitNotifyLateLoans struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	LateDays     int                        `config:"LATE_LOAN_DAYS" default:"3"`
}

// Initialize initializes the NotifyLateLoansImpl use case and registers it in the dependency container.
func (inl InitNotifyLateLoans) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[NotifyLateLoans](NewNotifyLateLoansImpl(inl.Uow, inl.TimeProvider, inl.Logger, inl.LateDays))
	return ctx, nil
}
