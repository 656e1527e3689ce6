// Package middleware holds the inbound request pipeline of the board API.
//
// Standard assembles it in this order, outermost first:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout
package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
)

// Middleware wraps a handler.
type Middleware = func(http.Handler) http.Handler

// Chain applies mws so that the first one sees the request first.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}

// Standard is the pipeline every board route runs behind. timeout bounds a
// request, including the lead API calls it makes. metrics may be nil.
func Standard(logger *slog.Logger, metrics *telemetry.Metrics, timeout time.Duration) Middleware {
	return Chain(
		Recovery(logger),
		RequestID(),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Timeout(timeout),
	)
}
