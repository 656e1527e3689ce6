package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

// ErrorResponse is an RFC 9457 problem document. Code is an extension member
// naming the domain error so clients need not parse Detail.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail is one rejected request field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemKinds is checked in order; the first sentinel err wraps wins.
var problemKinds = []struct {
	sentinel error
	status   int
	code     string
}{
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
	{domain.ErrValidation, http.StatusBadRequest, "invalid_request"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrConflict, http.StatusConflict, "conflict"},
	{domain.ErrUnavailable, http.StatusBadGateway, "lead_api_unavailable"},
}

// NewErrorResponse describes err for the request r. Errors outside the domain
// vocabulary become a 500 whose detail is withheld.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	resp := ErrorResponse{
		Type:     "about:blank",
		Status:   http.StatusInternalServerError,
		Detail:   http.StatusText(http.StatusInternalServerError),
		Instance: r.RequestURI,
	}
	for _, k := range problemKinds {
		if errors.Is(err, k.sentinel) {
			resp.Status, resp.Code, resp.Detail = k.status, k.code, err.Error()
			break
		}
	}
	resp.Title = http.StatusText(resp.Status)

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)
	if resp.Status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "unmapped error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding problem response",
			slog.Any("error", encErr),
		)
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc := "body"
		if field != loc {
			loc += "." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int { return cmp.Compare(a.Location, b.Location) })
	return details
}
