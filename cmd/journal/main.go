package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"practicejournal/internal/config"
	"practicejournal/internal/logging"
	"practicejournal/internal/prompt"
	"practicejournal/internal/store"
	"practicejournal/internal/ui"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string
	timeout    time.Duration

	// Loaded in PersistentPreRunE
	cfg *config.Config

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "journal - a day-by-day practice journal",
	Long: `journal runs the lessons of a thirteen day practice journal.

Each day walks through a topic (types, strings, loops, collections) and ends
with a challenge. Runs are recorded in a local SQLite history.

Examples:
  journal list
  journal run 3
  journal run --all --plain
  journal logs app.log --follow`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		ws, err := resolveWorkspace()
		if err != nil {
			return err
		}
		workspace = ws

		cfg, err = config.Load(resolveConfigPath())
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		if err := logging.Initialize(workspace, logging.Options{
			DebugMode:  cfg.Logging.DebugMode,
			Level:      cfg.Logging.Level,
			JSONFormat: cfg.Logging.JSONFormat,
			Categories: cfg.Logging.Categories,
		}); err != nil {
			logger.Warn("File logging disabled", zap.Error(err))
		}
		logger.Debug("Workspace ready", zap.String("workspace", workspace))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.journal/config.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Minute, "Operation timeout")

	// Lessons
	runCmd.Flags().BoolVar(&runAll, "all", false, "Run every lesson concurrently with default answers")
	runCmd.Flags().BoolVar(&plainOutput, "plain", false, "Disable colors and styling")
	runCmd.Flags().StringSliceVar(&scriptedAnswers, "answers", nil, "Comma-separated answers for prompts, in order")
	runCmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record runs")
	briefCmd.Flags().IntVar(&briefWidth, "width", 80, "Wrap width")

	// History
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show (0 for all)")

	// Logs
	logsCmd.Flags().StringVar(&logLevel, "level", "ERROR", "Level to extract")
	logsCmd.Flags().StringVarP(&logOut, "out", "o", "", "Also write messages to this file")
	logsCmd.Flags().BoolVarP(&logFollow, "follow", "f", false, "Keep watching the file for new lines")

	// Config
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configBuildCmd.Flags().StringSliceVar(&configRequire, "require", nil, "Keys that must be present")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configBuildCmd)

	// Add commands to root
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(briefCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveWorkspace returns the absolute workspace directory.
func resolveWorkspace() (string, error) {
	ws := workspace
	if ws == "" {
		var err error
		ws, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	abs, err := filepath.Abs(ws)
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace: %w", err)
	}
	return abs, nil
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath(workspace)
}

// currentConfig returns the loaded config, or defaults when the command
// runs without PersistentPreRunE (tests).
func currentConfig() *config.Config {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}

// commandContext is cancelled by SIGINT/SIGTERM and by the global timeout.
func commandContext(withTimeout bool) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	if !withTimeout || timeout <= 0 {
		return ctx, stop
	}
	tctx, cancel := context.WithTimeout(ctx, timeout)
	return tctx, func() {
		cancel()
		stop()
	}
}

// usePlain reports whether output should be unstyled: forced by flag or
// config, or because the command output is not a terminal.
func usePlain(cmd *cobra.Command, force bool) bool {
	if force || currentConfig().Journal.Plain {
		return true
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return !ok || !prompt.IsTerminal(f)
}

func newPrinter(cmd *cobra.Command, forcePlain bool) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), usePlain(cmd, forcePlain))
}

// openStore opens the run-history database inside the workspace.
func openStore() (*store.Store, error) {
	path := config.ResolvePath(workspace, currentConfig().Journal.DatabasePath)
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	if logger != nil {
		logger.Debug("Opened run history", zap.String("path", s.Path()))
	}
	return s, nil
}

func logInfo(msg string, fields ...zap.Field) {
	if logger != nil {
		logger.Info(msg, fields...)
	}
}
