package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/lead"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

// maxBodyBytes caps a move request body.
const maxBodyBytes = 64 << 10

func pathParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", domain.NewValidationError(name, domain.MsgRequired)
	}
	return v, nil
}

func parseStage(r *http.Request, name string) (lead.Stage, error) {
	st, err := lead.ParseStage(chi.URLParam(r, name))
	if err != nil {
		return "", domain.NewValidationError(name, err.Error())
	}
	return st, nil
}

// credentials are forwarded to the lead API as received.
func credentials(r *http.Request, orgHeader string) caller.Credentials {
	return caller.Credentials{
		Token: r.Header.Get("Authorization"),
		OrgID: r.Header.Get(orgHeader),
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response body", slog.Any("error", err))
	}
}

type validatable interface {
	Validate() error
}

// decodeBody reads one JSON document into dst and validates it. Anything
// that is not valid JSON, or runs past maxBodyBytes, is a validation error
// on "body".
func decodeBody(r *http.Request, dst validatable) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return dst.Validate()
}
