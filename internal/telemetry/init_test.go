package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{Logger: log.New(&strings.Builder{}, "", 0)}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitOpenTelemetry_Disabled(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, init.tp)
	assert.Nil(t, init.mp)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	init := InitHttpClient{Logger: log.New(&strings.Builder{}, "", 0), RetryMax: 1}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	always := func(context.Context, *http.Response, error) (bool, error) { return true, nil }
	policy := dontRetry500StatusPolicy(always)

	tests := map[string]struct {
		ctx         func() context.Context
		resp        *http.Response
		err         error
		expectRetry bool
	}{
		"internal-server-error": {
			ctx:         context.Background,
			resp:        &http.Response{StatusCode: http.StatusInternalServerError},
			expectRetry: false,
		},
		"service-unavailable": {
			ctx:         context.Background,
			resp:        &http.Response{StatusCode: http.StatusServiceUnavailable},
			expectRetry: true,
		},
		"transport-error": {
			ctx:         context.Background,
			err:         errors.New("connection refused"),
			expectRetry: true,
		},
		"canceled-context": {
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			resp:        &http.Response{StatusCode: http.StatusServiceUnavailable},
			expectRetry: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			retry, _ := policy(tt.ctx(), tt.resp, tt.err)
			assert.Equal(t, tt.expectRetry, retry)
		})
	}
}
