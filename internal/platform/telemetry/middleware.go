package telemetry

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/rastro/internal/platform/logging"
)

const (
	instrumentationName = "github.com/jsamuelsen/rastro/telemetry"

	// TraceIDHeader carries the trace ID of the request back to the caller.
	TraceIDHeader = "X-Trace-ID"

	// TraceIDKey is the gin.Context key holding the trace ID.
	TraceIDKey = "trace_id"
)

// httpMetrics are the server instruments recorded by Middleware.
type httpMetrics struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

// newHTTPMetrics creates the instruments on the global meter provider.
func newHTTPMetrics() (*httpMetrics, error) {
	meter := otel.Meter(instrumentationName)

	var (
		m    httpMetrics
		errs [3]error
	)

	m.duration, errs[0] = meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP requests."), metric.WithUnit("s"))
	m.requests, errs[1] = meter.Int64Counter("http.server.request.total",
		metric.WithDescription("HTTP requests served."), metric.WithUnit("{request}"))
	m.inFlight, errs[2] = meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("HTTP requests in flight."), metric.WithUnit("{request}"))

	if err := errors.Join(errs[:]...); err != nil {
		return nil, err
	}

	return &m, nil
}

// routeAttrs describes the matched route. Requests against a unit system
// also carry the system name so listings can be told apart per system.
func routeAttrs(c *gin.Context) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("http.method", c.Request.Method),
		attribute.String("http.route", c.FullPath()),
	}

	if system := c.Param("system"); system != "" {
		attrs = append(attrs, attribute.String("rastro.unit_system", system))
	}

	return attrs
}

// Middleware returns Gin middleware that records request metrics and exposes
// the trace ID in the X-Trace-ID response header and under TraceIDKey. It
// expects a span on the request context, see TracingMiddleware.
func Middleware() gin.HandlerFunc {
	// Errors are reported to otel but don't disable the trace header
	metrics, err := newHTTPMetrics()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()

		if metrics != nil {
			attrs := metric.WithAttributes(routeAttrs(c)...)

			metrics.inFlight.Add(ctx, 1, attrs)
			defer metrics.inFlight.Add(ctx, -1, attrs)
		}

		// The header must be set before the handler writes the body.
		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			id := sc.TraceID().String()

			c.Set(TraceIDKey, id)
			c.Header(TraceIDHeader, id)
			c.Request = c.Request.WithContext(logging.WithTraceID(ctx, id))
		}

		c.Next()

		if metrics != nil {
			attrs := append(routeAttrs(c), attribute.Int("http.status_code", c.Writer.Status()))
			metrics.duration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(attrs...))
			metrics.requests.Add(ctx, 1, metric.WithAttributes(attrs...))
		}
	}
}

// TracingMiddleware returns the otelgin tracing middleware.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
