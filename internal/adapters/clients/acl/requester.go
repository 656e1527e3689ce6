package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/pipeline-board/internal/domain"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/httpclient"
)

// maxResponseBodySize caps how much of a successful response is buffered.
const maxResponseBodySize = 16 << 20 // 16 MB

// envelope is the status wrapper the lead API puts around every JSON body.
// A 2xx response can still carry {"error": true}.
type envelope struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// Requester runs one lead API round trip: credential headers, JSON
// encoding, execution via httpclient.Client, status and envelope checks,
// error translation and decoding.
type Requester struct {
	client    *httpclient.Client
	orgHeader string
	logger    *slog.Logger
}

// NewRequester creates a Requester. orgHeader names the header that carries
// the organization identifier.
func NewRequester(client *httpclient.Client, orgHeader string, logger *slog.Logger) *Requester {
	return &Requester{client: client, orgHeader: orgHeader, logger: logger}
}

// Do sends method path?query with creds attached and decodes the response
// into respBody (which may be nil). reqBody is JSON-encoded when non-nil.
//
// Missing credentials fail with domain.ErrUnauthenticated before anything
// goes on the wire. Transport failures, an open circuit breaker and
// timeouts wrap domain.ErrUnavailable.
func (r *Requester) Do(ctx context.Context, creds caller.Credentials, method, path string, query url.Values, reqBody, respBody any) error {
	if !creds.Present() {
		return fmt.Errorf("%s %s: missing token or organization: %w", method, path, domain.ErrUnauthenticated)
	}

	target := r.client.BaseURL() + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	body := io.Reader(http.NoBody)
	if reqBody != nil {
		raw, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshaling %s body for %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("creating %s request for %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", creds.BearerToken())
	req.Header.Set(r.orgHeader, creds.OrgID)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return r.execute(req, respBody)
}

func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request and always closes resp.Body.
func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		// Retries exhausted on a retryable status leave both resp and err set.
		if resp != nil {
			defer r.closeBody(ctx, resp)
			if !isSuccess(resp.StatusCode) {
				return TranslateHTTPError(resp)
			}
		}
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.String("breaker", r.client.CircuitBreakerState()),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
		}
		return fmt.Errorf("%s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	defer r.closeBody(ctx, resp)

	if !isSuccess(resp.StatusCode) {
		r.logger.WarnContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
		)
		return TranslateHTTPError(resp)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return fmt.Errorf("reading response from %s %s: %w: %w", req.Method, req.URL.Path, domain.ErrUnavailable, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error {
		msg := env.Message
		if msg == "" {
			msg = "request rejected"
		}
		return fmt.Errorf("%s: %w", msg, domain.ErrValidation)
	}

	if respBody != nil {
		if err := json.Unmarshal(raw, respBody); err != nil {
			return fmt.Errorf("decoding response from %s %s: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
