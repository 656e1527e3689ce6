// Package acl is the anti-corruption layer in front of the downstream lead
// API. It speaks the API's wire format (query filters, envelope flags, loose
// id types) and hands the rest of the service domain types and domain errors.
// Wire DTOs and their translators live in acl/lead.
package acl

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
)

const maxErrorBodySize = 1 << 20

// apiError covers both error shapes the lead API produces: problem documents
// and its own {"error": true, "message": ...} envelope.
type apiError struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
	Errors  []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError maps a non-2xx lead API response to a domain error.
//
//	401       -> domain.ErrUnauthenticated (re-authenticate, do not retry)
//	403       -> domain.ErrForbidden
//	404       -> domain.ErrNotFound
//	400, 422  -> domain.ErrValidation, as *domain.ValidationError when fields are listed
//	409       -> domain.ErrConflict
//	429, 5xx  -> domain.ErrUnavailable
func TranslateHTTPError(resp *http.Response) error {
	body := readAPIError(resp)
	detail := cmp.Or(body.Detail, body.Message, http.StatusText(resp.StatusCode))

	sentinel := statusSentinel(resp.StatusCode)
	if sentinel == nil {
		return fmt.Errorf("lead API answered %d: %s", resp.StatusCode, detail)
	}
	if sentinel == domain.ErrValidation && len(body.Errors) > 0 {
		fields := make(map[string]string, len(body.Errors))
		for _, e := range body.Errors {
			fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

func statusSentinel(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusTooManyRequests:
		return domain.ErrUnavailable
	}
	if status >= http.StatusInternalServerError {
		return domain.ErrUnavailable
	}
	return nil
}

// readAPIError decodes a JSON error body. Any other body reads as empty.
func readAPIError(resp *http.Response) apiError {
	var out apiError
	if resp.Body == nil {
		return out
	}
	mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mt != "application/json" && mt != "application/problem+json" {
		return out
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&out); err != nil {
		return apiError{}
	}
	return out
}
