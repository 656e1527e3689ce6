// Command server runs the pipeline board API.
//
// APP_PROFILE picks the config profile. SIGINT or SIGTERM stops it: the
// listener drains first, then accepted moves finish reconciling, then
// telemetry is flushed. The DI container derives that order from the
// dependency graph.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/pipeline-board/internal/adapters/http"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/pipeline-board/internal/app"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/health"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/telemetry"
	"github.com/jsamuelsen11/pipeline-board/internal/ports"
)

const (
	shutdownTimeout = 30 * time.Second
	janitorInterval = time.Minute
	leadAPIName     = "lead-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE is required (local, prod, ...)")
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := do.New()
	do.ProvideValue(injector, logger)
	do.Provide(injector, func(do.Injector) (*observability, error) {
		return newObservability(ctx, cfg.Telemetry)
	})
	provideBoardAPI(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring board API: %w", err)
	}
	boards := do.MustInvoke[*app.BoardService](injector)
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*acl.LeadClient](injector))
	registry.Register(boards)

	go boards.RunJanitor(ctx, janitorInterval)

	serveErr := make(chan error, 1)
	go func() { serveErr <- server.Start() }()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-serveErr:
		serveErr <- err
		logger.Error("board API stopped", slog.Any("error", err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	report := injector.ShutdownWithContext(shutdownCtx)
	if err := <-serveErr; err != nil {
		return err
	}
	if !report.Succeed {
		return report
	}
	logger.Info("shutdown complete", slog.Duration("took", report.ShutdownTime))
	return nil
}

// observability owns the OpenTelemetry providers. metrics is nil while
// telemetry is disabled, which every recorder accepts.
type observability struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

func newObservability(ctx context.Context, cfg config.TelemetryConfig) (*observability, error) {
	if !cfg.Enabled {
		return &observability{}, nil
	}

	o := &observability{}
	var err error
	if o.tracer, err = telemetry.InitTracer(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	if o.meter, err = telemetry.InitMeter(ctx, cfg.ServiceName, cfg.Exporter, cfg.Endpoint); err != nil {
		return nil, errors.Join(fmt.Errorf("init meter: %w", err), o.Shutdown(ctx))
	}
	if o.metrics, err = telemetry.NewMetrics(o.meter, cfg.ServiceName); err != nil {
		return nil, errors.Join(fmt.Errorf("creating metrics: %w", err), o.Shutdown(ctx))
	}
	return o, nil
}

// Shutdown flushes whichever providers were started.
func (o *observability) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		errs = append(errs, o.tracer.Shutdown(ctx))
	}
	if o.meter != nil {
		errs = append(errs, o.meter.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func provideBoardAPI(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*telemetry.Metrics, error) {
		return do.MustInvoke[*observability](i).metrics, nil
	})
	do.Provide(injector, func(i do.Injector) (*acl.LeadClient, error) {
		client := httpclient.New(&cfg.Client, leadAPIName, do.MustInvoke[*telemetry.Metrics](i), logger)
		return acl.NewLeadClient(client, cfg.Client.OrgHeader, logger), nil
	})
	do.Provide(injector, func(i do.Injector) (*app.BoardService, error) {
		leads := do.MustInvoke[*acl.LeadClient](i)
		return app.NewBoardService(leads, leads, cfg.Board, do.MustInvoke[*telemetry.Metrics](i), logger), nil
	})
	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		boardH := handlers.NewBoardHandler(do.MustInvoke[*app.BoardService](i), cfg.Client.OrgHeader)
		healthH := handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i))
		stack := middleware.Standard(logger, do.MustInvoke[*telemetry.Metrics](i), cfg.Server.WriteTimeout)
		return adapthttp.NewRouter(boardH, healthH, stack), nil
	})
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})
}
