package workers

import (
	"bytes"
	"context"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-library/internal/usecases"
	"github.com/cleitonmarx/symbiont-library/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMessageRelay_Run(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(relay *mocks.MockRelayOutbox)
		batchSize       int
		expectedSignals []usecases.RelayStats
		expectedLogs    []string
	}{
		"error-then-success": {
			setExpectations: func(relay *mocks.MockRelayOutbox) {
				relay.EXPECT().Execute(mock.Anything).Return(usecases.RelayStats{}, assert.AnError).Once()
				relay.EXPECT().Execute(mock.Anything).Return(usecases.RelayStats{Published: 1}, nil).Once()
				// the ticker may fire again before the cancellation is observed
				relay.EXPECT().Execute(mock.Anything).Return(usecases.RelayStats{}, nil).Maybe()
			},
			batchSize: 10,
			expectedSignals: []usecases.RelayStats{
				{},
				{Published: 1},
			},
			expectedLogs: []string{
				"MessageRelay: error processing batch: " + assert.AnError.Error(),
			},
		},
		"full-batch-drains-without-waiting": {
			setExpectations: func(relay *mocks.MockRelayOutbox) {
				relay.EXPECT().Execute(mock.Anything).Return(usecases.RelayStats{Published: 1, Failed: 1}, nil).Once()
				relay.EXPECT().Execute(mock.Anything).Return(usecases.RelayStats{Published: 1}, nil).Once()
				relay.EXPECT().Execute(mock.Anything).Return(usecases.RelayStats{}, nil).Maybe()
			},
			batchSize: 2,
			expectedSignals: []usecases.RelayStats{
				{Published: 1, Failed: 1},
				{Published: 1},
			},
			expectedLogs: []string{
				"MessageRelay: 1 event(s) marked as failed",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			relay := mocks.NewMockRelayOutbox(t)
			tt.setExpectations(relay)

			cancelCtx, cancel := context.WithCancel(context.Background())
			defer cancel()

			signalChan := make(chan usecases.RelayStats)
			var buf bytes.Buffer

			mr := MessageRelay{
				RelayOutbox:         relay,
				Logger:              log.New(&buf, "", 0),
				Interval:            2 * time.Millisecond,
				BatchSize:           tt.batchSize,
				workerExecutionChan: signalChan,
			}

			done := make(chan error, 1)
			go func() {
				done <- mr.Run(cancelCtx)
			}()

			for _, expected := range tt.expectedSignals {
				select {
				case got := <-signalChan:
					assert.Equal(t, expected, got)
				case <-time.After(1 * time.Second):
					t.Fatal("timeout waiting for message relay to process batch")
				}
			}

			cancel()
			assert.NoError(t, waitStopped(signalChan, done))
			for _, expectedLog := range tt.expectedLogs {
				assert.Contains(t, buf.String(), expectedLog)
			}
		})
	}
}

func TestMessageRelay_drain(t *testing.T) {
	tests := map[string]struct {
		batches       []usecases.RelayStats
		batchSize     int
		expectedCalls int
	}{
		"retried-batch-waits-for-next-tick": {
			batches:       []usecases.RelayStats{{Retried: 2}},
			batchSize:     2,
			expectedCalls: 1,
		},
		"partially-retried-batch-waits-for-next-tick": {
			batches:       []usecases.RelayStats{{Published: 1, Retried: 1}},
			batchSize:     2,
			expectedCalls: 1,
		},
		"full-published-batches-drain-until-short": {
			batches: []usecases.RelayStats{
				{Published: 2},
				{Published: 1, Failed: 1},
				{Published: 1},
			},
			batchSize:     2,
			expectedCalls: 3,
		},
		"batching-disabled": {
			batches:       []usecases.RelayStats{{Published: 2}},
			batchSize:     0,
			expectedCalls: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			relay := mocks.NewMockRelayOutbox(t)
			for _, stats := range tt.batches {
				relay.EXPECT().Execute(mock.Anything).Return(stats, nil).Once()
			}

			mr := MessageRelay{
				RelayOutbox: relay,
				Logger:      log.New(&bytes.Buffer{}, "", 0),
				Interval:    time.Hour,
				BatchSize:   tt.batchSize,
			}
			mr.drain(context.Background())

			relay.AssertNumberOfCalls(t, "Execute", tt.expectedCalls)
		})
	}
}

// waitStopped drains worker signals until Run returns.
func waitStopped[T any](signals <-chan T, done <-chan error) error {
	for {
		select {
		case <-signals:
		case err := <-done:
			return err
		}
	}
}
