package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/middleware"
)

func TestTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
		wantHeader string
	}{
		{
			name: "finished in time",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if _, ok := r.Context().Deadline(); !ok {
					t.Error("handler context has no deadline")
				}
				w.Header().Set("Location", "/api/v1/boards/b-1/moves/m-1")
				w.WriteHeader(http.StatusAccepted)
				_, _ = w.Write([]byte("queued"))
			},
			wantStatus: http.StatusAccepted,
			wantBody:   "queued",
			wantHeader: "/api/v1/boards/b-1/moves/m-1",
		},
		{
			name:       "implicit status",
			handler:    func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("board")) },
			wantStatus: http.StatusOK,
			wantBody:   "board",
		},
		{
			name: "deadline missed after a partial write",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				<-r.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `"status":504`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			middleware.Timeout(50*time.Millisecond)(tt.handler).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/boards/b-1", http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
			if got := rec.Header().Get("Location"); got != tt.wantHeader {
				t.Errorf("Location = %q, want %q", got, tt.wantHeader)
			}
		})
	}
}

func TestTimeout_LateWriteFails(t *testing.T) {
	t.Parallel()

	late := make(chan error, 1)
	h := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		time.Sleep(10 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		late <- err
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if err := <-late; !errors.Is(err, http.ErrHandlerTimeout) {
		t.Errorf("late Write() error = %v, want http.ErrHandlerTimeout", err)
	}
	if strings.Contains(rec.Body.String(), "too late") {
		t.Error("late write reached the client")
	}
}

func TestTimeout_PanicReachesCaller(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	defer func() {
		if v := recover(); v != "boom" {
			t.Errorf("recovered %v, want the handler's panic", v)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
}
