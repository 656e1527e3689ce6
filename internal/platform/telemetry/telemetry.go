// Package telemetry sets up OpenTelemetry tracing and metrics, exporting to
// stdout in development and OTLP/HTTP in production.
//
//	tp, err := telemetry.InitTracer(ctx, "pipeline-board", telemetry.ExporterStdout, "")
//	mp, err := telemetry.InitMeter(ctx, "pipeline-board", telemetry.ExporterStdout, "")
//	metrics, err := telemetry.NewMetrics(mp, "pipeline-board")
//	metrics.MoveTotal.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String("committed")))
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporters.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod   = attribute.Key("http.method")
	AttrHTTPStatus   = attribute.Key("http.status_code")
	AttrHTTPRoute    = attribute.Key("http.route")
	AttrPeerService  = attribute.Key("peer.service")
	AttrResult       = attribute.Key("result")
	AttrLoadStrategy = attribute.Key("board.load_strategy")
	AttrBoardID      = attribute.Key("board.id")
)

// Metrics holds pre-registered OpenTelemetry metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	// Board instruments. result is accepted, noop, reordered, rejected,
	// committed or rolled_back for moves and ok or failed for loads.
	MoveTotal         metric.Int64Counter
	LoadTotal         metric.Int64Counter
	ReconcileDuration metric.Float64Histogram
	ActiveBoards      metric.Int64UpDownCounter
}

// InitTracer installs a global TracerProvider and the W3C trace context and
// baggage propagators. exporter is ExporterStdout or ExporterOTLP, the latter
// sending OTLP/HTTP to endpoint. The caller shuts the provider down.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, target, err := setup(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var spans sdktrace.SpanExporter
	if target == nil {
		spans, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	} else {
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(target.Host)}
		if target.Scheme != "https" {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		spans, err = otlptracehttp.New(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(spans), sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

// InitMeter installs a global MeterProvider that exports periodically.
// Exporter selection follows InitTracer.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, target, err := setup(serviceName, exporter, endpoint)
	if err != nil {
		return nil, err
	}

	var readings sdkmetric.Exporter
	if target == nil {
		readings, err = stdoutmetric.New()
	} else {
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(target.Host)}
		if target.Scheme != "https" {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		readings, err = otlpmetrichttp.New(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(readings)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp, nil
}

// NewMetrics creates every instrument on a meter named after the service.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)

	var (
		m    Metrics
		errs []error
	)
	hist := func(name, desc string) metric.Float64Histogram {
		h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return h
	}
	counter := func(name, desc, unit string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
		if err != nil {
			errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
		}
		return c
	}

	m.ServerRequestDuration = hist("http.server.request.duration", "Duration of incoming HTTP requests")
	m.ServerRequestTotal = counter("http.server.request.total", "Total number of incoming HTTP requests", "{request}")
	m.ClientRequestDuration = hist("http.client.request.duration", "Duration of outgoing HTTP requests")
	m.ClientRequestTotal = counter("http.client.request.total", "Total number of outgoing HTTP requests", "{request}")
	m.MoveTotal = counter("board.move.total", "Drops handled by boards, by result", "{move}")
	m.LoadTotal = counter("board.load.total", "Board loads, by result", "{load}")
	m.ReconcileDuration = hist("board.move.reconcile.duration", "Time from optimistic apply to commit or rollback")

	active, err := meter.Int64UpDownCounter("board.sessions.active",
		metric.WithDescription("Mounted board sessions"),
		metric.WithUnit("{board}"),
	)
	if err != nil {
		errs = append(errs, fmt.Errorf("creating board.sessions.active: %w", err))
	}
	m.ActiveBoards = active

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

// setup builds the service resource and resolves the OTLP target. target is
// nil for the stdout exporter. A bare host:port endpoint is taken as plain
// HTTP.
func setup(serviceName, exporter, endpoint string) (*resource.Resource, *url.URL, error) {
	res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	))
	if err != nil {
		return nil, nil, fmt.Errorf("creating resource: %w", err)
	}

	switch exporter {
	case ExporterStdout:
		return res, nil, nil
	case ExporterOTLP:
		if endpoint == "" {
			return nil, nil, errors.New("otlp exporter requires an endpoint")
		}
		target, err := url.Parse(endpoint)
		if err != nil || target.Host == "" {
			target = &url.URL{Host: endpoint}
		}
		return res, target, nil
	default:
		return nil, nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}
