package main

import (
	"github.com/SscSPs/fx_quote_app/internal/dto"
	"github.com/spf13/cobra"
)

func transactionsCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "transactions",
		Short: "List recorded conversions",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApplication(cmd.Context(), state.cfg, state.logger)
			if err != nil {
				return err
			}
			defer app.close()

			txns, err := app.services.Conversion.ListTransactions(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.ToListTransactionResponse(txns))
		},
	}
}
