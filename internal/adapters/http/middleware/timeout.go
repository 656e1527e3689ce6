package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/dto"
)

// Timeout gives each request a deadline and answers 504 when the handler
// misses it. The handler writes into a buffer that is copied out only if it
// finishes in time. Writes after the deadline fail with
// http.ErrHandlerTimeout. A handler panic is re-raised on the serving
// goroutine so that Recovery sees it.
func Timeout(timeout time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buf := &bufferedResponse{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(buf, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				if !errors.Is(ctx.Err(), context.DeadlineExceeded) {
					buf.copyTo(w)
					return
				}
				writeTimeout(w, r, timeout)
			case <-ctx.Done():
				buf.expire()
				writeTimeout(w, r, timeout)
			}
		})
	}
}

type bufferedResponse struct {
	mu      sync.Mutex
	header  http.Header
	body    []byte
	status  int
	expired bool
}

// Header is only safe to touch from the handler goroutine.
func (b *bufferedResponse) Header() http.Header { return b.header }

func (b *bufferedResponse) WriteHeader(code int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.status == 0 && !b.expired {
		b.status = code
	}
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		return 0, http.ErrHandlerTimeout
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	b.body = append(b.body, p...)
	return len(p), nil
}

func (b *bufferedResponse) expire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.expired = true
}

func (b *bufferedResponse) copyTo(w http.ResponseWriter) {
	b.mu.Lock()
	defer b.mu.Unlock()
	maps.Copy(w.Header(), b.header)
	if b.status != 0 {
		w.WriteHeader(b.status)
	}
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}

// writeTimeout answers 504 with a problem body. A drop accepted before the
// deadline keeps reconciling; only the response is abandoned.
func writeTimeout(w http.ResponseWriter, r *http.Request, timeout time.Duration) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(http.StatusGatewayTimeout)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(http.StatusGatewayTimeout),
		Status:   http.StatusGatewayTimeout,
		Detail:   "request did not complete within " + timeout.String(),
		Instance: r.RequestURI,
	})
}
