package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer(ServiceName)
)

// ErrorKindKey is the span event attribute that classifies a recorded error.
const ErrorKindKey = attribute.Key("error.kind")

// SpanNameFormatter names HTTP spans after the matched route pattern, or the method and path
// when no pattern matched.
func SpanNameFormatter(_ string, r *http.Request) string {
	return getHttpRoute(r)
}

func getHttpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// Start a new span with the global tracer.
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, getCallerName(2), opts...)
}

// RecordErrorAndStatus records an error in the span and reports whether there was one.
// Rejections caused by the caller (validation, business rule, not found) are recorded as
// events only; every other error also sets the span status to Error.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}

	kind := ErrorKind(err)
	span.RecordError(err, trace.WithAttributes(ErrorKindKey.String(kind)))
	if !isCallerError(kind) {
		span.SetStatus(codes.Error, err.Error())
	}
	return true
}

// ErrorKind classifies err by the domain error type it wraps.
func ErrorKind(err error) string {
	var (
		validationErr *domain.ValidationErr
		ruleErr       *domain.BusinessRuleErr
		notFoundErr   *domain.NotFoundErr
		argErr        *domain.InvalidArgumentErr
	)
	switch {
	case errors.As(err, &validationErr):
		return "validation"
	case errors.As(err, &ruleErr):
		return "business_rule"
	case errors.As(err, &notFoundErr):
		return "not_found"
	case errors.As(err, &argErr):
		return "invalid_argument"
	default:
		return "internal"
	}
}

func isCallerError(kind string) bool {
	return kind == "validation" || kind == "business_rule" || kind == "not_found"
}

// Middleware returns an HTTP middleware that instruments handlers with OpenTelemetry.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(
			WithHttpMetricAttributes,
		),
	)
}

// getCallerName retrieves the name of the function at the specified stack depth.
func getCallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	parts := strings.Split(fn.Name(), "/")

	return strings.ReplaceAll(parts[len(parts)-1], ".", "::")
}

// newTracerProvider creates a new tracer provider with an OTLP HTTP exporter.
func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	otlpExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(otlpExporter,
			sdktrace.WithBatchTimeout(time.Second),
		),
		sdktrace.WithResource(res),
	)
	return tracerProvider, otlpExporter, nil
}
