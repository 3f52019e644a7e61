package services

import (
	"context"

	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc exposes the current exchange rate
type RateReaderSvc interface {
	// GetCurrentRate fetches a fresh USD-BRL rate (BRL per USD).
	GetCurrentRate(ctx context.Context) (decimal.Decimal, error)
}

// ConversionWriterSvc performs conversions, recording each one as a transaction
type ConversionWriterSvc interface {
	// Convert validates the request, converts the amount at the current rate and
	// records the transaction before returning.
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error)
}

// TransactionReaderSvc defines read operations over recorded conversions
type TransactionReaderSvc interface {
	// ListTransactions retrieves every recorded conversion.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	RateReaderSvc
	ConversionWriterSvc
	TransactionReaderSvc
}
