package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/serieslog"
	bt "github.com/fwojciec/serieslog/bubbletea"
	"github.com/fwojciec/serieslog/csv"
	"github.com/fwojciec/serieslog/yaml"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by all commands.
type options struct {
	configPath string
	file       string
	logPath    string
}

// env is everything a command needs once flags and config are resolved.
type env struct {
	config serieslog.Config
	store  *csv.Store
	logger *slog.Logger
	close  func() error
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "serieslog",
		Short: "Log work sessions and completed series to a CSV file",
		Long: "serieslog records the start and stop time of each work session together\n" +
			"with the number of series completed. Running it with no subcommand opens\n" +
			"the interactive logger.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", yaml.DefaultPath, "config file path")
	rootCmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "CSV log file (default from config, else "+serieslog.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&opts.logPath, "log", "", "write debug logs to this file")

	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newExportCmd(opts))

	return rootCmd
}

// setup loads the config, applies flag overrides and opens the store.
func (o *options) setup() (*env, error) {
	cfg, err := yaml.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.file != "" {
		cfg.File = o.file
	}
	logger, closeLog, err := newLogger(o.logPath)
	if err != nil {
		return nil, err
	}
	store, err := csv.NewStore(cfg.File)
	if err != nil {
		closeLog()
		return nil, err
	}
	logger.Debug("resolved log file", "path", store.Path(), "config", o.configPath)
	return &env{config: cfg, store: store, logger: logger, close: closeLog}, nil
}

// newLogger returns a text logger writing to path, or a discarding logger
// when path is empty. The TUI owns the terminal, so logs never go to stderr.
func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f.Close, nil
}

func runTUI(cmd *cobra.Command, opts *options) error {
	e, err := opts.setup()
	if err != nil {
		return err
	}
	defer e.close()

	ctrl := serieslog.NewController(e.store, serieslog.WithLogger(e.logger))
	final, err := bt.Run(cmd.Context(), bt.New(ctrl, e.config.Theme))
	if err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	if final.State() == serieslog.Running {
		fmt.Fprintln(cmd.ErrOrStderr(), "Session still running; it will be offered for resume next time.")
	}
	return nil
}
