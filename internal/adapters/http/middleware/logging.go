package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

// Logging returns middleware that logs request start and completion events.
// It creates a child logger enriched with the request ID and correlation ID
// from context, stores it via logging.WithLogger for downstream use, and
// logs completion with method, path, status code and duration. Completion
// also carries the matched route and the board id when the request
// addressed a board.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			reqID := RequestIDFromContext(ctx)
			corrID := CorrelationIDFromContext(ctx)

			child := logger.With(
				slog.String("request_id", reqID),
				slog.String("correlation_id", corrID),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if child.Enabled(ctx, slog.LevelDebug) {
				headerAttrs := RedactHeaders(r.Header)
				args := make([]any, 0, len(headerAttrs))
				for _, a := range headerAttrs {
					args = append(args, a)
				}
				child.DebugContext(ctx, "request headers", args...)
			}

			rw := record(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rw.status),
				slog.Duration("duration", time.Since(start)),
			}
			if route, boardID := routeInfo(ctx); route != "" {
				attrs = append(attrs, slog.String("route", route))
				if boardID != "" {
					attrs = append(attrs, slog.String("board_id", boardID))
				}
			}
			child.InfoContext(ctx, "request completed", attrs...)
		})
	}
}

// routeInfo reads the matched chi pattern and board id. Both are empty
// before routing or when no route matched.
func routeInfo(ctx context.Context) (route, boardID string) {
	rctx := chi.RouteContext(ctx)
	if rctx == nil {
		return "", ""
	}
	return rctx.RoutePattern(), rctx.URLParam("boardId")
}
