package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"autotiler/internal/app"
	"autotiler/pkg/config"
	"autotiler/pkg/logger"
)

var version = "0.1.0"

type options struct {
	configPath string
	socketPath string
	debug      bool
	dryRun     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "autotiler",
		Short: "Automatic split direction for i3 and sway",
		Long: `autotiler listens for window focus changes and issues "split horizontal" or
"split vertical" so the next window tiles sensibly: terminals stack to the right,
everything else spirals. Windows inside tabbed or stacked containers are left alone.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to config file")
	flags.StringVar(&opts.socketPath, "socket", "", "IPC socket path (default: $SWAYSOCK or $I3SOCK)")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	root.Flags().BoolVar(&opts.dryRun, "dry-run", false, "log split commands instead of sending them")

	root.AddCommand(newExplainCmd(opts), newVersionCmd())
	return root
}

func newExplainCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Show the split decision for the currently focused window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, cfg, err := setup(opts)
			if err != nil {
				return err
			}
			defer log.Close()

			a, err := app.NewForSession(cfg, true, log)
			if err != nil {
				log.Error("Failed to create autotiler", err)
				return err
			}
			return a.Explain(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "autotiler %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
		},
	}
}

// setup initializes logging and loads the configuration.
func setup(opts *options) (*logger.Logger, *config.Config, error) {
	logLevel := zerolog.InfoLevel
	if opts.debug {
		logLevel = zerolog.DebugLevel
	}

	log, err := logger.NewLogger(
		logger.WithConsole(),
		logger.WithLevel(logLevel),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return nil, nil, err
	}

	log.Debug("Loading configuration", "provided_path", opts.configPath)
	cfg, err := config.FindConfig(opts.configPath, log)
	if err != nil {
		log.Error("Failed to load configuration", err, "provided_path", opts.configPath)
		log.Close()
		return nil, nil, err
	}
	if opts.socketPath != "" {
		cfg = cfg.WithSocketPath(opts.socketPath)
	}

	log.Info("Configuration loaded successfully",
		"path", cfg.Path(),
		"terminals", cfg.Terminals(),
		"queue_size", cfg.QueueSize())
	return log, cfg, nil
}

func run(ctx context.Context, opts *options) error {
	log, cfg, err := setup(opts)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting autotiler",
		"version", version,
		"pid", os.Getpid(),
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
		"debug", opts.debug,
		"dry_run", opts.dryRun)

	a, err := app.NewForSession(cfg, opts.dryRun, log)
	if err != nil {
		log.Error("Failed to create autotiler", err)
		return err
	}

	if err := a.Run(ctx); err != nil {
		log.Error("Autotiler stopped", err)
		return err
	}
	return nil
}
