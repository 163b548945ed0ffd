package time

import (
	"context"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitCurrentTimeProvider_Initialize(t *testing.T) {
	tests := map[string]struct {
		timeZone  string
		expectErr bool
	}{
		"utc":          {timeZone: "UTC"},
		"local-zone":   {timeZone: "Local"},
		"unknown-zone": {timeZone: "Mars/Olympus", expectErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			i := &InitCurrentTimeProvider{TimeZone: tt.timeZone}

			_, err := i.Initialize(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)

			p, err := depend.Resolve[domain.CurrentTimeProvider]()
			assert.NoError(t, err)
			assert.Equal(t, tt.timeZone, p.Now().Location().String())
		})
	}
}

func TestCurrentTimeProvider_Now(t *testing.T) {
	p := CurrentTimeProvider{}
	now := p.Now()
	assert.WithinDuration(t, time.Now(), now, time.Second)

	loc := time.FixedZone("UTC-3", -3*60*60)
	assert.Equal(t, loc, NewCurrentTimeProvider(loc).Now().Location())
}
