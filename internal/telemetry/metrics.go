package telemetry

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// WithHttpMetricAttributes labels HTTP metrics with the matched route and the request method.
func WithHttpMetricAttributes(r *http.Request) []attribute.KeyValue {
	return []attribute.KeyValue{
		semconv.HTTPRoute(getHttpRoute(r)),
		semconv.HTTPRequestMethodKey.String(r.Method),
	}
}

// latencyBuckets are the histogram boundaries, in seconds, for every duration instrument.
var latencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// meterViews returns the views applied to every instrument the service exports.
func meterViews() []sdkmetric.View {
	return []sdkmetric.View{
		sdkmetric.NewView(
			sdkmetric.Instrument{Name: "*duration*"},
			sdkmetric.Stream{
				Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: latencyBuckets},
			},
		),
		// Request and response body sizes are not useful for a catalog API.
		sdkmetric.NewView(
			sdkmetric.Instrument{Name: "http.server.*.body.size"},
			sdkmetric.Stream{Aggregation: sdkmetric.AggregationDrop{}},
		),
		// The rule message is the only label kept on rejected operations.
		sdkmetric.NewView(
			sdkmetric.Instrument{Name: "business_rule_violations_total"},
			sdkmetric.Stream{AttributeFilter: attribute.NewAllowKeysFilter("rule")},
		),
	}
}

func newMeterProvider(ctx context.Context, res *resource.Resource, interval time.Duration) (*sdkmetric.MeterProvider, sdkmetric.Exporter, error) {
	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithInsecure())
	if err != nil {
		return nil, nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(interval),
		)),
		sdkmetric.WithView(meterViews()...),
	)
	return meterProvider, exporter, nil
}
