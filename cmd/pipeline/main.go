// pipeline is a terminal client for the sales pipeline board. It mounts a
// board for the caller behind --token and --org, runs the board engine
// in-process against the lead API and draws it with bubbletea.
//
// Logs go to a file, never to the terminal the board is drawn on.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/do/v2"
	"github.com/spf13/pflag"

	"github.com/jsamuelsen11/pipeline-board/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/pipeline-board/internal/adapters/tui"
	"github.com/jsamuelsen11/pipeline-board/internal/app"
	"github.com/jsamuelsen11/pipeline-board/internal/domain/caller"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/config"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/httpclient"
	"github.com/jsamuelsen11/pipeline-board/internal/platform/logging"
)

const (
	envToken = "PIPELINE_TOKEN"
	envOrg   = "PIPELINE_ORG"

	// shutdownTimeout bounds how long quitting waits for moves that are
	// still being saved.
	shutdownTimeout = 10 * time.Second
)

type options struct {
	profile   string
	configDir string
	token     string
	org       string
	logFile   string
	refresh   time.Duration
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(opts.profile, config.WithConfigDir(opts.configDir))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logFile)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	registerDependencies(injector, cfg, logger)

	boards, err := do.Invoke[*app.BoardService](injector)
	if err != nil {
		return fmt.Errorf("resolving board service: %w", err)
	}

	ctx := logging.WithLogger(context.Background(), logger)
	creds := caller.Credentials{Token: opts.token, OrgID: opts.org}

	view, err := boards.Mount(ctx, creds)
	if err != nil {
		return fmt.Errorf("mounting board: %w", err)
	}
	logger.InfoContext(ctx, "terminal client started",
		slog.String("board_id", view.ID),
		slog.String("status", string(view.Status)),
	)

	model := tui.NewModel(ctx, boards, view, tui.WithRefreshInterval(opts.refresh))
	_, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := boards.Shutdown(shutdownCtx); err != nil {
		logger.WarnContext(ctx, "quit before every move was saved", slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "warning: some moves may not have been saved")
	}

	if runErr != nil {
		return fmt.Errorf("running board: %w", runErr)
	}
	return nil
}

func parseFlags(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("pipeline", pflag.ContinueOnError)
	fs.StringVar(&opts.profile, "profile", os.Getenv("APP_PROFILE"), "config profile (local, dev, qa, prod)")
	fs.StringVar(&opts.configDir, "config-dir", "configs", "directory holding base.yaml and {profile}.yaml")
	fs.StringVar(&opts.token, "token", os.Getenv(envToken), "lead API token (default $"+envToken+")")
	fs.StringVar(&opts.org, "org", os.Getenv(envOrg), "organization id (default $"+envOrg+")")
	fs.StringVar(&opts.logFile, "log-file", "pipeline.log", "file that receives log records")
	fs.DurationVar(&opts.refresh, "refresh", tui.DefaultRefreshInterval, "how often the board is redrawn")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: pipeline [flags]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Keys: ←/→/↑/↓ select, H/L move stage, K/J reorder, r reload, q quit.")
		fmt.Fprintln(os.Stderr)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	if opts.profile == "" {
		return options{}, errors.New("--profile or APP_PROFILE is required (e.g. local, dev, qa, prod)")
	}
	return opts, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*httpclient.Client, error) {
		return httpclient.New(&cfg.Client, "lead-api", nil, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.LeadClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewLeadClient(client, cfg.Client.OrgHeader, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.BoardService, error) {
		leads := do.MustInvoke[*acl.LeadClient](i)
		return app.NewBoardService(leads, leads, cfg.Board, nil, logger), nil
	})
}
