package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/okdaichi/metro/internal/network"
	"github.com/okdaichi/metro/internal/route"
	"github.com/okdaichi/metro/observability"
)

// overridable streams for easier unit-testing
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// session is everything one command invocation needs.
type session struct {
	cfg     *config
	graph   *network.Graph
	planner *route.Planner
	logger  *slog.Logger
}

// newFlagSet creates a flag set carrying the flags shared by every command.
func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "path to config file (default $METRO_CONFIG or "+defaultConfigFile+")")
	return fs, configFile
}

// openSession loads the config and the network and starts observability.
// The returned close function flushes and stops the exporters.
func openSession(ctx context.Context, configFile string) (*session, func(), error) {
	if err := loadEnv(); err != nil {
		return nil, nil, err
	}

	cfg, err := loadConfig(configPath(configFile))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := observability.Setup(ctx, cfg.Observability); err != nil {
		return nil, nil, fmt.Errorf("failed to set up observability: %w", err)
	}
	logger := newLogger(cfg)

	closeFn := func() {
		if err := observability.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("failed to shut down observability", "error", err)
		}
	}

	g, err := network.NewFileSource(cfg.NetworkFile).Load()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to load network: %w", err)
	}
	observability.SetNetworkSize(g.NumVertices(), g.NumEdges())
	logger.Debug("network loaded", "file", cfg.NetworkFile, "stations", g.NumVertices(), "edges", g.NumEdges())

	router, err := route.NewRouter(cfg.Router)
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	return &session{
		cfg:   cfg,
		graph: g,
		planner: &route.Planner{
			Graph:  g,
			Router: router,
			Logger: logger,
		},
		logger: logger,
	}, closeFn, nil
}

// newLogger builds the stderr logger for cfg, tagged with a fresh session
// id. Records are also exported when log export is configured.
func newLogger(cfg *config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(stderr, opts)
	} else {
		h = slog.NewTextHandler(stderr, opts)
	}

	return slog.New(observability.Tee(h)).With("session", uuid.NewString())
}
