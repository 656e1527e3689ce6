package middleware

import "net/http"

// statusRecorder remembers what a handler wrote so that outer middleware can
// log, trace and recover around it.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	started bool
	bytes   int64
}

func record(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader passes on the first status only.
func (s *statusRecorder) WriteHeader(code int) {
	if s.started {
		return
	}
	s.status, s.started = code, true
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.started = true
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the flusher underneath.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
