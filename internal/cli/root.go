// Package cli implements the agrirent command tree. Every command that
// belongs to a console view is dispatched through the session gate
// before it talks to the backend.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/me/agrirent/internal/api"
	"github.com/me/agrirent/internal/config"
	"github.com/me/agrirent/internal/logging"
	"github.com/me/agrirent/internal/session"
)

var (
	flagConfig       string
	flagAPIURL       string
	flagSessionStore string
	flagSessionPath  string
	flagDebug        bool
	flagLogLevel     string
	flagLogFormat    string

	cfg     config.ConsoleConfig
	logger  *slog.Logger
	gate    *session.Gate
	client  *api.Client
	closers []io.Closer
)

// NewRootCmd creates the root cobra command for the agrirent CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "agrirent",
		Short: "AgriRent: farming equipment rental console",
		Long:  "agrirent lets customers rent farming equipment and administrators manage inventory, rentals, and reports.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ~/.agrirent/config.yaml)")
	root.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Backend API URL (or "+config.EnvAPIURL+" env)")
	root.PersistentFlags().StringVar(&flagSessionStore, "session-store", "", "Session store: file, sqlite, memory")
	root.PersistentFlags().StringVar(&flagSessionPath, "session-path", "", "Session file or database path")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newOpenCmd(),
		newEquipmentCmd(),
		newRentCmd(),
		newRentalsCmd(),
		newReportCmd(),
		newAuditLogsCmd(),
		newStatsCmd(),
		newAICmd(),
	)

	return root
}

// setup resolves configuration (defaults, file, env, flags), builds the
// logger and restores the session before any command runs.
func setup(cmd *cobra.Command) error {
	teardown()

	cfg = config.DefaultConsoleConfig()
	cfg.LogLevel = "warn"

	if flagConfig != "" {
		if err := config.LoadFile(flagConfig, &cfg, false); err != nil {
			return err
		}
	} else if p, err := config.DefaultPath(); err == nil {
		if err := config.LoadFile(p, &cfg, true); err != nil {
			return err
		}
	}
	cfg.ApplyEnv(os.Getenv)

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = flagAPIURL
	}
	if flags.Changed("session-store") {
		cfg.SessionStore = flagSessionStore
	}
	if flags.Changed("session-path") {
		cfg.SessionPath = flagSessionPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = flagLogFormat
	}
	if flagDebug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var logCloser io.Closer
	logger, logCloser = logging.NewLoggerFromOptions(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	closers = append(closers, logCloser)

	st, stCloser, err := config.OpenStore(cmd.Context(), cfg, logger)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	closers = append(closers, stCloser)

	gate = session.NewGate(st, logger)
	gate.Initialize(cmd.Context())
	client = api.NewClient(cfg.APIURL, gate, cfg.HTTPTimeout, logger)
	return nil
}

// Execute runs the agrirent CLI.
func Execute() error {
	return execute(NewRootCmd())
}

// execute runs root and releases the store and log file whether or not
// the command succeeded. Cobra skips post-run hooks after an error.
func execute(root *cobra.Command) error {
	defer teardown()
	return root.Execute()
}

func teardown() {
	for i := len(closers) - 1; i >= 0; i-- {
		closers[i].Close()
	}
	closers = nil
}
