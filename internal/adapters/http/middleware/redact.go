package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

// RedactHeaders converts an http.Header map into a slice of slog.Attr values
// for debug logging. Credential headers listed in logging.SensitiveHeaders
// are replaced with "[REDACTED]". The organization header is kept since it
// names a tenant rather than proving identity. Multi-value headers are joined
// with a comma.
func RedactHeaders(headers http.Header) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(headers))
	for key, vals := range headers {
		if logging.SensitiveHeaders[strings.ToLower(key)] {
			attrs = append(attrs, slog.String(key, "[REDACTED]"))
		} else {
			attrs = append(attrs, slog.String(key, strings.Join(vals, ",")))
		}
	}
	return attrs
}
