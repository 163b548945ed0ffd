package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := map[string]struct {
		in       time.Time
		expected time.Time
	}{
		"utc": {
			in:       time.Date(2026, 3, 4, 15, 30, 10, 99, time.UTC),
			expected: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		},
		"keeps-location": {
			in:       time.Date(2026, 3, 4, 23, 59, 0, 0, saoPaulo),
			expected: time.Date(2026, 3, 4, 0, 0, 0, 0, saoPaulo),
		},
		"already-midnight": {
			in:       time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StartOfDay(tt.in))
		})
	}
}
