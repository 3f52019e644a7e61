package dto

import (
	"time"

	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	"github.com/SscSPs/fx_quote_app/internal/utils"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the body of a conversion where the direction is part of the payload.
type ConvertRequest struct {
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	Direction string          `json:"direction" binding:"required" example:"BRL_TO_USD"`
	User      string          `json:"user" binding:"required" example:"Ana"`
}

// DirectionalConvertRequest defines the body of a conversion where the direction comes from the route.
type DirectionalConvertRequest struct {
	Amount decimal.Decimal `json:"amount" swaggertype:"string" example:"100.00"`
	User   string          `json:"user" binding:"required" example:"Ana"`
}

// ToDomain builds the engine request for the given direction.
func (r DirectionalConvertRequest) ToDomain(direction domain.Direction) domain.ConversionRequest {
	return domain.ConversionRequest{Amount: r.Amount, Direction: direction, User: r.User}
}

// ConversionResponse defines the data returned for a successful conversion.
type ConversionResponse struct {
	From            string    `json:"from" example:"BRL"`
	To              string    `json:"to" example:"USD"`
	OriginalAmount  string    `json:"originalAmount" example:"100"`
	ConvertedAmount string    `json:"convertedAmount" example:"20.0000"`
	User            string    `json:"user" example:"Ana"`
	TransactionID   int64     `json:"transactionID" example:"1"`
	Timestamp       time.Time `json:"timestamp"`
}

// ToConversionResponse converts an engine result into the API response.
func ToConversionResponse(req domain.ConversionRequest, res *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		From:            req.Direction.Source(),
		To:              req.Direction.Target(),
		OriginalAmount:  req.Amount.String(),
		ConvertedAmount: utils.FormatWithPrecision(res.ConvertedAmount, domain.ConversionScale),
		User:            res.Transaction.User,
		TransactionID:   res.Transaction.ID,
		Timestamp:       res.Transaction.OccurredAt,
	}
}

// TransactionResponse defines the data returned for a recorded conversion.
type TransactionResponse struct {
	ID        int64     `json:"id" example:"1"`
	User      string    `json:"user" example:"Ana"`
	Direction string    `json:"direction" example:"BRL_TO_USD"`
	Timestamp time.Time `json:"timestamp"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.ID,
		User:      txn.User,
		Direction: string(txn.Direction),
		Timestamp: txn.OccurredAt,
	}
}

// ToListTransactionResponse converts transactions to responses; an empty input yields an empty slice.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}

// RateResponse defines the data returned for the current quote.
type RateResponse struct {
	Pair string `json:"pair" example:"USD-BRL"`
	Bid  string `json:"bid" example:"5.1234"`
}

// ToRateResponse formats a rate for the quote endpoint.
func ToRateResponse(rate decimal.Decimal) RateResponse {
	return RateResponse{
		Pair: domain.CurrencyUSD + "-" + domain.CurrencyBRL,
		Bid:  utils.FormatWithPrecision(rate, domain.ConversionScale),
	}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"amount must be greater than zero"`
}
