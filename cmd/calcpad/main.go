package main

import (
	"fmt"
	"os"

	"github.com/codefionn/calcpad/internal/config"
	"github.com/codefionn/calcpad/internal/logger"
	"github.com/codefionn/calcpad/internal/pprof"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configFile string
	logLevel   string
	logPath    string
	storeFlag  string
	storePath  string
	noAnimate  bool

	cfg      *config.Config
	watcher  *config.Watcher
	profiler = &pprof.Profiler{}
)

// rootCmd runs the terminal keypad when stdin is a terminal and evaluates
// stdin line by line otherwise.
var rootCmd = &cobra.Command{
	Use:   "calcpad",
	Short: "A keypad calculator for the browser and the terminal",
	Long: `calcpad is a keypad calculator with a 17 character display.

Expressions use + - x ÷ with the usual precedence and are evaluated when
"=" is pressed. The keypad is served to the browser (calcpad serve), drawn
in the terminal (calcpad tui) or fed expressions directly (calcpad eval).

Without a subcommand calcpad opens the terminal keypad, or evaluates the
lines of stdin when it is not a terminal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, args []string) error {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return runTUI(cmd, args)
		}
		return runEvalLines(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		os.Exit(1)
	}
}

func init() {
	// runs after failed commands too, unlike PersistentPostRun
	cobra.OnFinalize(teardown)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (JSON), defaults to the user config dir")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, off")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-path", "", "Log file, \"-\" for stderr")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Session store: memory, sqlite3 or sqlite")
	rootCmd.PersistentFlags().StringVar(&storePath, "store-path", "", "Database file of the sqlite stores")
	rootCmd.PersistentFlags().BoolVar(&noAnimate, "no-animations", false, "Disable key press animations")
	rootCmd.PersistentFlags().StringVar(&profiler.CPUProfile, "cpu-profile", "", "Write a CPU profile to this file")
	rootCmd.PersistentFlags().StringVar(&profiler.HeapProfile, "heap-profile", "", "Write a heap profile to this file on exit")
}

// setup loads the configuration, applies flag overrides and starts logging
func setup(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = config.GetConfigPath()
	}

	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	loaded.ApplyEnv()
	applyFlags(cmd, loaded)
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("config loaded from %s", path)

	if err := profiler.Start(); err != nil {
		return err
	}

	// the log level follows edits of the config file unless pinned
	if !pinnedLogLevel(cmd) {
		w, err := config.Watch(path, func(reloaded *config.Config) {
			level := logger.ParseLevel(reloaded.LogLevel)
			logger.Global().SetLevel(level)
			logger.Info("log level set to %s", level)
		})
		if err != nil {
			logger.Warn("config hot reload disabled: %v", err)
		} else {
			watcher = w
		}
	}

	return nil
}

func teardown() {
	if err := profiler.Stop(); err != nil {
		logger.Warn("profiling: %v", err)
	}
	if watcher != nil {
		_ = watcher.Close()
		watcher = nil
	}
	_ = logger.Global().Close()
}

func applyFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("log-path") {
		c.LogPath = logPath
	}
	if flags.Changed("store") {
		c.Store.Driver = storeFlag
	}
	if flags.Changed("store-path") {
		c.Store.Path = storePath
	}
	if flags.Changed("no-animations") {
		c.DisableAnimations = noAnimate
	}
}

func pinnedLogLevel(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("log-level") || os.Getenv(config.EnvLogLevel) != ""
}
