package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-library/internal/usecases"
)

// LateLoanNotifier is a runnable that periodically flags unreturned loans past their due window.
type LateLoanNotifier struct {
	NotifyLateLoans     usecases.NotifyLateLoans `resolve:""`
	Logger              *log.Logger              `resolve:""`
	Interval            time.Duration            `config:"LATE_LOAN_CHECK_INTERVAL" default:"24h"`
	workerExecutionChan chan int
}

// Run checks for late loans once at start-up and then on every tick.
func (n LateLoanNotifier) Run(ctx context.Context) error {
	n.Logger.Println("LateLoanNotifier: running...")
	ticker := time.NewTicker(n.Interval)
	defer ticker.Stop()

	n.check(ctx)
	for {
		select {
		case <-ticker.C:
			n.check(ctx)
		case <-ctx.Done():
			n.Logger.Println("LateLoanNotifier: stopping...")
			return nil
		}
	}
}

func (n LateLoanNotifier) check(ctx context.Context) {
	count, err := n.NotifyLateLoans.Execute(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		n.Logger.Printf("LateLoanNotifier: %v", err)
	}
	if n.workerExecutionChan != nil {
		n.workerExecutionChan <- count
	}
}
