package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

// jitter spreads retry delays by ±25%.
const jitter = 0.25

// StatusError reports a response whose status is worth retrying (5xx, 429)
// after the last attempt also came back with it.
type StatusError struct {
	Service string
	Status  int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.Status, e.Service)
}

// newBackOff builds the exponential schedule for one request.
func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.Multiplier = c.retry.Multiplier
	b.RandomizationFactor = jitter
	return b
}

// send runs req with retries. Non-idempotent requests get a single attempt;
// a stage update is a PUT and may be repeated.
//
// When the last attempt ends in a retryable status, or ctx ends while waiting
// to retry one, that response is returned with its body open alongside the
// error; the caller closes it.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.retry.MaxAttempts <= 0 {
		return nil, fmt.Errorf("httpclient: max attempts must be >= 1, got %d", c.retry.MaxAttempts)
	}
	tries := c.retry.MaxAttempts
	if !isIdempotent(req.Method) {
		tries = 1
	}

	body, err := bufferBody(req)
	if err != nil {
		return nil, err
	}

	var (
		attempt int
		prev    *http.Response
	)
	attemptOnce := func() (*http.Response, error) {
		attempt++
		if prev != nil {
			discard(prev)
			prev = nil
		}
		rewind(req, body)

		resp, err := c.http.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}
		prev = resp
		return resp, &StatusError{Service: c.name, Status: resp.StatusCode}
	}

	notify := func(err error, wait time.Duration) {
		logging.FromContext(ctx).WarnContext(ctx, "retrying request",
			slog.String("operation", "httpclient.Do"),
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("peer_service", c.name),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", tries),
			slog.Duration("backoff", wait),
			slog.Any("error", err),
		)
	}

	resp, err := backoff.Retry(ctx, attemptOnce,
		backoff.WithBackOff(c.newBackOff()),
		backoff.WithMaxTries(uint(tries)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(notify),
	)
	var perm *backoff.PermanentError
	if errors.As(err, &perm) {
		err = perm.Err
	}
	return resp, err
}

// bufferBody reads the request body once so every attempt can replay it.
func bufferBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	_ = req.Body.Close()
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains and closes a response so its connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

// isRetryable reports whether a transport error may succeed on another try.
// Cancellation and deadlines are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}
