// Package httpclient is the outbound HTTP client for the lead API.
//
// A call to Do is admitted by a circuit breaker, waits on a rate limiter,
// carries the inbound request and correlation ids plus W3C trace context,
// runs inside a client span and is retried with exponential backoff when the
// method is idempotent:
//
//	client := httpclient.New(&cfg.Client, "lead-api", metrics, logger)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
)

// idKey indexes the inbound ids kept in a context for forwarding.
type idKey int

const (
	requestID idKey = iota
	correlationID
)

// forwarded maps each id to the header it travels in.
var forwarded = [...]struct {
	key    idKey
	header string
}{
	{requestID, "X-Request-ID"},
	{correlationID, "X-Correlation-ID"},
}

// WithRequestID stores the inbound request id for forwarding.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestID, id)
}

// WithCorrelationID stores the inbound correlation id for forwarding.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationID, id)
}

// Client talks to one downstream service.
type Client struct {
	http    *http.Client
	name    string
	baseURL string
	retry   config.RetryConfig
	breaker *gobreaker.CircuitBreaker[*http.Response]
	limiter *rate.Limiter
	tracer  trace.Tracer
	metrics *telemetry.Metrics
}

// New builds a Client from the client config section. name labels spans,
// metrics and the readiness check. metrics may be nil, and so may logger.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		name:    name,
		baseURL: cfg.BaseURL,
		retry:   cfg.Retry,
		breaker: newBreaker(name, cfg.CircuitBreaker, logger),
		tracer:  otel.Tracer("github.com/jsamuelsen11/pipeline-board/internal/platform/httpclient"),
		metrics: metrics,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}
	return c
}

// newBreaker trips after MaxFailures consecutive failures and lets
// HalfOpenLimit trial calls through once Timeout has passed.
func newBreaker(name string, cfg config.CircuitBreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker[*http.Response] {
	return gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: uint32(min(max(cfg.HalfOpenLimit, 0), math.MaxUint32)),
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(max(cfg.MaxFailures, 1))
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("lead API breaker changed state",
				slog.String("peer_service", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})
}

// Do sends req. A nil error means a response the caller must close. A
// retryable status that outlived every attempt comes back as both a response
// and a *StatusError. A rejection by the open breaker returns
// gobreaker.ErrOpenState and no response.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	began := time.Now()
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		for _, f := range forwarded {
			if id, _ := ctx.Value(f.key).(string); id != "" {
				req.Header.Set(f.header, id)
			}
		}
		return c.traced(ctx, req)
	})
	c.record(ctx, req.Method, time.Since(began), resp, err)
	return resp, err
}

// traced runs the retry loop inside a client span and injects the span's
// context into req.
func (c *Client) traced(ctx context.Context, req *http.Request) (*http.Response, error) {
	ctx, span := c.tracer.Start(ctx, "HTTP "+req.Method+" "+c.name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			telemetry.AttrHTTPMethod.String(req.Method),
			telemetry.AttrPeerService.String(c.name),
		),
	)
	defer span.End()
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.send(ctx, req.WithContext(ctx))
	if resp != nil {
		span.SetAttributes(telemetry.AttrHTTPStatus.Int(resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return resp, err
}

// BaseURL is the root every request path is joined to.
func (c *Client) BaseURL() string { return c.baseURL }

// Name identifies the service in the readiness report.
func (c *Client) Name() string { return c.name }

// CircuitBreakerState names the breaker state: closed, half-open or open.
func (c *Client) CircuitBreakerState() string {
	return c.breaker.State().String()
}

// HealthCheck derives readiness from the breaker without calling out. A
// half-open breaker is degraded; an open one is failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded, breaker is %s", c.name, state)
	default:
		return fmt.Errorf("%s: failing, breaker is %s", c.name, state)
	}
}

// record counts the call, including calls the breaker turned away.
func (c *Client) record(ctx context.Context, method string, took time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}
	status, result := 0, "error"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case resp != nil:
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = "success"
		}
	}
	set := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, took.Seconds(), set)
	c.metrics.ClientRequestTotal.Add(ctx, 1, set)
}
