package usecases

import (
	"context"
	"errors"

	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                  = otel.Meter("usecases")
	BooksCreated           metric.Int64Counter
	LoansCreated           metric.Int64Counter
	BusinessRuleViolations metric.Int64Counter
	OutboxEventsRelayed    metric.Int64Counter
)

func init() {
	var err error
	BooksCreated, err = meter.Int64Counter(
		"books_created_total",
		metric.WithDescription("Total books added to the catalog"),
	)
	if err != nil {
		panic(err)
	}

	LoansCreated, err = meter.Int64Counter(
		"loans_created_total",
		metric.WithDescription("Total loans issued"),
	)
	if err != nil {
		panic(err)
	}

	// Rejected requests, labeled by the rule message
	BusinessRuleViolations, err = meter.Int64Counter(
		"business_rule_violations_total",
		metric.WithDescription("Total operations rejected by a business rule"),
	)
	if err != nil {
		panic(err)
	}

	OutboxEventsRelayed, err = meter.Int64Counter(
		"outbox_events_relayed_total",
		metric.WithDescription("Outbox events handled by the relay, labeled by outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordBookCreated records a book added to the catalog.
func RecordBookCreated(ctx context.Context) {
	BooksCreated.Add(ctx, 1)
}

// RecordLoanCreated records a loan issued to a customer.
func RecordLoanCreated(ctx context.Context) {
	LoansCreated.Add(ctx, 1)
}

// RecordBusinessRuleViolation records err when it is a business rule violation. Other errors are ignored.
func RecordBusinessRuleViolation(ctx context.Context, err error) {
	var ruleErr *domain.BusinessRuleErr
	if !errors.As(err, &ruleErr) {
		return
	}
	BusinessRuleViolations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("rule", ruleErr.Error()),
	))
}

// RecordOutboxRelayed records the outcome of a relay execution.
func RecordOutboxRelayed(ctx context.Context, stats RelayStats) {
	for outcome, count := range map[string]int{
		"published": stats.Published,
		"retried":   stats.Retried,
		"failed":    stats.Failed,
	} {
		if count == 0 {
			continue
		}
		OutboxEventsRelayed.Add(ctx, int64(count), metric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}
}
