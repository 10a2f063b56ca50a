package middlewares

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// TracingMiddleware opens a server span per HTTP request, linked to any
// inbound trace context. It runs after RequestID so the span carries the
// request ID from the start.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	tracer := otel.Tracer(serviceName)
	propagator := otel.GetTextMapPropagator()

	return func(c *gin.Context) {
		ctx := propagator.Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		attrs := []attribute.KeyValue{
			semconv.HTTPMethod(c.Request.Method),
			semconv.HTTPRoute(route),
			semconv.HTTPTarget(c.Request.URL.Path),
			semconv.NetHostName(c.Request.Host),
			semconv.HTTPUserAgent(c.Request.UserAgent()),
			attribute.String("http.client_ip", c.ClientIP()),
		}
		if requestID := RequestIDFromContext(c); requestID != "" {
			attrs = append(attrs, attribute.String("request.id", requestID))
		}

		ctx, span := tracer.Start(
			ctx,
			c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(semconv.HTTPStatusCode(status))

		if status < 400 {
			span.SetStatus(codes.Ok, "")
			return
		}
		span.SetStatus(codes.Error, c.Errors.String())
		if len(c.Errors) > 0 {
			span.RecordError(c.Errors.Last())
		}
	}
}
