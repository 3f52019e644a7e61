package clients

import (
	"context"

	"github.com/SscSPs/fx_quote_app/internal/core/domain"
)

// QuoteClient fetches the current USD-BRL quote from an external provider.
// Implementations make a single attempt per call and report every failure
// (transport, timeout, unusable payload) as apperrors.ErrQuoteUnavailable.
type QuoteClient interface {
	FetchUSDBRLQuote(ctx context.Context) (domain.Quote, error)
}
