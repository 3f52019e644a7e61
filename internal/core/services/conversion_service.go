package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/fx_quote_app/internal/apperrors"
	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	"github.com/SscSPs/fx_quote_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_quote_app/internal/core/ports/services"
	"github.com/SscSPs/fx_quote_app/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// conversionService implements portssvc.ConversionSvcFacade.
// It holds no mutable state; every call fetches a fresh rate.
type conversionService struct {
	BaseService
	quoteClient clients.QuoteClient
	txnRepo     portsrepo.TransactionRepositoryFacade
	validate    *validator.Validate
}

// NewConversionService creates a conversion service backed by the given quote client and store.
func NewConversionService(quoteClient clients.QuoteClient, txnRepo portsrepo.TransactionRepositoryFacade) portssvc.ConversionSvcFacade {
	return &conversionService{
		quoteClient: quoteClient,
		txnRepo:     txnRepo,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
	}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// GetCurrentRate fetches the current BRL-per-USD rate. Provider failures are
// reported as apperrors.ErrRateUnavailable.
func (s *conversionService) GetCurrentRate(ctx context.Context) (decimal.Decimal, error) {
	quote, err := s.quoteClient.FetchUSDBRLQuote(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to obtain current rate")
		return decimal.Zero, apperrors.NewRateUnavailableError(err)
	}
	if !quote.Rate.IsPositive() {
		return decimal.Zero, apperrors.NewRateUnavailableError(errors.New("provider returned a non-positive rate"))
	}
	s.LogDebug(ctx, "Obtained current rate",
		slog.String("rate", quote.Rate.String()),
		slog.Time("observed_at", quote.ObservedAt))
	return quote.Rate, nil
}

// Convert runs validate, fetch rate, compute, persist. A failure at any step
// returns no result and leaves no transaction behind.
func (s *conversionService) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	if err := s.validateRequest(req); err != nil {
		s.recordConversion(req.Direction, err)
		return nil, err
	}

	rate, err := s.GetCurrentRate(ctx)
	if err != nil {
		s.recordConversion(req.Direction, err)
		return nil, err
	}

	converted := domain.Convert(req.Amount, rate, req.Direction)

	txn, err := s.txnRepo.AppendTransaction(ctx, req.User, req.Direction)
	if err != nil {
		s.LogError(ctx, err, "Failed to record conversion",
			slog.String("direction", string(req.Direction)))
		s.recordConversion(req.Direction, err)
		return nil, err
	}

	s.recordConversion(req.Direction, nil)
	s.LogInfo(ctx, "Conversion recorded",
		slog.Int64("transaction_id", txn.ID),
		slog.String("direction", string(req.Direction)),
		slog.String("rate", rate.String()),
		slog.String("amount", req.Amount.String()),
		slog.String("converted_amount", converted.StringFixed(domain.ConversionScale)),
	)

	return &domain.ConversionResult{
		ConvertedAmount: converted,
		Transaction:     *txn,
	}, nil
}

// ListTransactions returns every recorded conversion in insertion order.
func (s *conversionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *conversionService) validateRequest(req domain.ConversionRequest) error {
	if !req.Amount.IsPositive() {
		return apperrors.NewValidationError("amount must be greater than zero")
	}
	if err := domain.CheckAmountBounds(req.Amount); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	if strings.TrimSpace(req.User) == "" {
		return apperrors.NewValidationError("user must not be empty")
	}
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.NewValidationError("invalid " + strings.ToLower(verrs[0].Field()) + ": failed '" + verrs[0].Tag() + "' check")
		}
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}

func (s *conversionService) recordConversion(direction domain.Direction, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultError
	}
	label := string(direction)
	if !direction.IsValid() {
		label = "invalid"
	}
	metrics.ConversionsTotal.WithLabelValues(label, result).Inc()
}
