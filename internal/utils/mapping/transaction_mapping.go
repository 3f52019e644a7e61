package mapping

import (
	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	"github.com/SscSPs/fx_quote_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:         d.ID,
		UserName:   d.User,
		Direction:  string(d.Direction),
		OccurredAt: d.OccurredAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:         m.ID,
		User:       m.UserName,
		Direction:  domain.Direction(m.Direction),
		OccurredAt: m.OccurredAt,
	}
}

// ToDomainTransactions converts a slice of model Transactions, never returning nil.
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
