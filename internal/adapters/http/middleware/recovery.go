package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
)

// errPanic is all a client learns about a panic.
var errPanic = errors.New("internal server error")

// Recovery turns a handler panic into a 500 problem response, unless the
// handler had already started its response, and logs the panic with its stack
// and the board it happened on.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}

				attrs := []any{
					slog.Any("panic", v),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", w.Header().Get(headerRequestID)),
				}
				if route, boardID := routeInfo(r.Context()); boardID != "" {
					attrs = append(attrs, slog.String("route", route), slog.String("board_id", boardID))
				}
				attrs = append(attrs, slog.String("stack", string(debug.Stack())))
				logger.ErrorContext(r.Context(), "handler panicked", attrs...)

				if !rec.started {
					dto.WriteErrorResponse(rec, r, errPanic)
				}
			}()
			next.ServeHTTP(rec, r)
		})
	}
}
