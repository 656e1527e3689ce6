package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
)

// OpenTelemetry continues the caller's W3C trace in a server span and counts
// the request. The span starts under the raw path and is renamed to the
// matched route once the handler returns, so every board shares one span
// name and one metric series. metrics may be nil.
func OpenTelemetry(metrics *telemetry.Metrics) Middleware {
	tracer := otel.Tracer("github.com/jsamuelsen11/pipeline-board/internal/adapters/http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(telemetry.AttrHTTPMethod.String(r.Method)),
			)
			defer span.End()

			rec := record(w)
			next.ServeHTTP(rec, r.WithContext(ctx))

			route, boardID := routeInfo(ctx)
			attrs := []attribute.KeyValue{
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(rec.status),
			}
			span.SetAttributes(telemetry.AttrHTTPStatus.Int(rec.status))
			if route != "" {
				span.SetName("HTTP " + r.Method + " " + route)
				span.SetAttributes(telemetry.AttrHTTPRoute.String(route))
			}
			if boardID != "" {
				span.SetAttributes(telemetry.AttrBoardID.String(boardID))
			}
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}

			if metrics == nil {
				return
			}
			result := "success"
			if rec.status >= http.StatusBadRequest {
				result = "error"
			}
			set := metric.WithAttributes(append(attrs, telemetry.AttrResult.String(result))...)
			metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), set)
			metrics.ServerRequestTotal.Add(ctx, 1, set)
		})
	}
}
