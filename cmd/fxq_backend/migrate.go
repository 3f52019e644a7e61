package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func migrateCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations for the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd.Context(), state.cfg)
			if err != nil {
				return err
			}
			defer store.close()

			state.logger.Info("Running database migrations...", slog.String("store", string(state.cfg.StoreDriver)))
			return store.migrate(cmd.Context())
		},
	}
}
