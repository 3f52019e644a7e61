package main

import (
	"fmt"

	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	"github.com/SscSPs/fx_quote_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func convertCmd(state *cliState) *cobra.Command {
	var amount, direction, user string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert an amount at the current rate and record the transaction",
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amount, err)
			}
			dir, err := domain.ParseDirection(direction)
			if err != nil {
				return err
			}

			app, err := newApplication(cmd.Context(), state.cfg, state.logger)
			if err != nil {
				return err
			}
			defer app.close()

			req := domain.ConversionRequest{Amount: value, Direction: dir, User: user}
			res, err := app.services.Conversion.Convert(cmd.Context(), req)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), dto.ToConversionResponse(req, res))
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Amount to convert, e.g. 100.50")
	cmd.Flags().StringVar(&direction, "direction", "", "BRL_TO_USD or USD_TO_BRL")
	cmd.Flags().StringVar(&user, "user", "", "Name recorded with the transaction")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("direction")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
