package main

import (
	"github.com/SscSPs/fx_quote_app/internal/core/services"
	"github.com/SscSPs/fx_quote_app/internal/dto"
	"github.com/SscSPs/fx_quote_app/internal/repositories/database/memory"
	"github.com/spf13/cobra"
)

func rateCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "rate",
		Short: "Fetch and print the current USD-BRL rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Rate lookups never touch the store; skip opening the configured one.
			svc := services.NewConversionService(newQuoteClient(state.cfg), memory.NewTransactionRepository())
			rate, err := svc.GetCurrentRate(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.ToRateResponse(rate))
		},
	}
}
