package telemetry

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestWithHttpMetricAttributes(t *testing.T) {
	req, _ := http.NewRequest(http.MethodPost, "/loans", nil)
	req.Pattern = "POST /loans"

	attrs := WithHttpMetricAttributes(req)

	assert.Equal(t, []attribute.KeyValue{
		attribute.String("http.route", "POST /loans"),
		attribute.String("http.request.method", "POST"),
	}, attrs)
}

func TestMeterViews(t *testing.T) {
	assert.Len(t, meterViews(), 3)
}
