// Command profileform runs the basic details form in a terminal UI, as a
// line prompt or as a web page.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-profileform/internal/config"
	"github.com/goliatone/go-profileform/internal/logging"
	"github.com/goliatone/go-profileform/pkg/formstate"
	"github.com/goliatone/go-profileform/pkg/present"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	logFile    string
	verbose    bool
	delay      time.Duration

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "profileform",
		Short: "Collect and summarise basic profile details",
		Long: `profileform collects a name, contact details, gender, date of birth and a
tech stack, validates them, simulates a submission and shows a summary.

Run without arguments to start the interactive terminal form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&a.logFile, "log-file", "", "log file for the terminal form (logs are discarded when empty)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.DurationVar(&a.delay, "delay", 0, "simulated submission time (overrides submit_delay)")

	root.AddCommand(
		a.tuiCmd(),
		a.promptCmd(),
		a.serveCmd(),
		a.schemaCmd(),
	)
	return root
}

// setup loads configuration and builds the logger. The terminal form owns
// stdout so it only logs to --log-file.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("delay") {
		cfg.SubmitDelay = a.delay
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	var logger *zap.Logger
	if cmd.Name() == "tui" || cmd == cmd.Root() {
		logger, err = logging.ToFile(a.logFile, cfg.LogLevel, a.verbose)
	} else {
		logger, err = logging.New(cfg.LogLevel, a.verbose)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func (a *app) submitter() formstate.Submitter {
	return formstate.NewDelaySubmitter(a.cfg.SubmitDelay)
}

func (a *app) presenter() *present.Presenter {
	return present.New(
		present.WithPlaceholder(a.cfg.Placeholder),
		present.WithDateLayout(a.cfg.DateLayout),
		present.WithLogger(a.logger),
	)
}
