package repositories

import (
	"context"

	"github.com/SscSPs/fx_quote_app/internal/core/domain"
)

// TransactionReader defines read operations for conversion transactions
type TransactionReader interface {
	// ListTransactions returns every stored transaction in insertion order.
	// An empty store yields an empty slice, not an error.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for conversion transactions
type TransactionWriter interface {
	// AppendTransaction durably records a conversion and returns it with the
	// store-assigned ID and timestamp. IDs are unique across concurrent callers.
	AppendTransaction(ctx context.Context, user string, direction domain.Direction) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
