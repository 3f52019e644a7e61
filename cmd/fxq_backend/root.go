package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/fx_quote_app/internal/platform/config"
	"github.com/spf13/cobra"
)

// cliState is filled by the root command before any subcommand runs.
type cliState struct {
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:           "fxq_backend",
		Short:         "USD-BRL quote and conversion service",
		Version:       "v1.0.0",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			state.cfg = cfg
			state.logger = newLogger(cfg)
			slog.SetDefault(state.logger)
			return nil
		},
	}

	serve := serveCmd(state)
	rootCmd.AddCommand(
		serve,
		migrateCmd(state),
		rateCmd(state),
		convertCmd(state),
		transactionsCmd(state),
	)
	// serve is the default when no subcommand is given
	rootCmd.RunE = serve.RunE

	return rootCmd
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
}
