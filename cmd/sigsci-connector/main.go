package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	sigsci "github.com/tphakala/go-sigsci"
	"github.com/tphakala/go-sigsci/connector"
	"github.com/tphakala/go-sigsci/internal/config"
	"github.com/tphakala/go-sigsci/internal/ctxlog"
)

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Config string `short:"c" help:"Path to YAML config file" type:"existingfile" optional:""`

	Run    RunCmd    `cmd:"" help:"Execute all collection steps and report a summary"`
	Verify VerifyCmd `cmd:"" help:"Verify that the configured credentials can reach the API"`
}

type (
	// RunCmd executes the full collection.
	RunCmd struct{}

	// VerifyCmd checks credentials without collecting anything.
	VerifyCmd struct{}
)

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("sigsci-connector"),
		kong.Description("Collects Signal Sciences corps, users, and cloud WAF instances into a normalized entity graph."),
	)

	if err := kctx.Run(&cli); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// setup loads configuration, configures logging, and builds the client
// plus a signal-aware context shared by both commands.
func setup(cli *CLI) (context.Context, context.CancelFunc, *sigsci.Client, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, nil, nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	opts := []sigsci.ClientOption{
		sigsci.WithCredentials(cfg.Email, cfg.Password),
		sigsci.WithLogger(logger),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, sigsci.WithBaseURL(cfg.BaseURL))
	}

	client, err := sigsci.NewClient(opts...)
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = ctxlog.WithLogger(ctx, logger)

	return ctx, stop, client, nil
}

// Run executes every registered step in dependency order and logs a
// summary of the produced graph.
func (r *RunCmd) Run(cli *CLI) error {
	ctx, stop, client, err := setup(cli)
	if err != nil {
		return err
	}
	defer stop()

	registry := connector.NewRegistry()
	for _, step := range connector.Steps() {
		registry.Register(step)
	}

	state := connector.NewInMemoryJobState()
	if err := registry.Run(ctx, &connector.ExecutionContext{
		Client: client,
		State:  state,
	}); err != nil {
		return err
	}

	slog.Info("collection complete",
		"entities", len(state.Entities()),
		"relationships", len(state.Relationships()),
	)
	return nil
}

// Run verifies API reachability with the configured credentials.
func (v *VerifyCmd) Run(cli *CLI) error {
	ctx, stop, client, err := setup(cli)
	if err != nil {
		return err
	}
	defer stop()

	if err := client.VerifyAuthentication(ctx); err != nil {
		return err
	}

	slog.Info("authentication verified", "base_url", client.BaseURL())
	return nil
}
