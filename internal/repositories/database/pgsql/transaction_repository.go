package pgsql

import (
	"context"

	"github.com/SscSPs/fx_quote_app/internal/apperrors"
	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_quote_app/internal/models"
	"github.com/SscSPs/fx_quote_app/internal/utils/mapping"
)

const (
	insertTransactionQuery = `
		INSERT INTO transactions (user_name, direction)
		VALUES ($1, $2)
		RETURNING id, user_name, direction, occurred_at;
	`

	listTransactionsQuery = `
		SELECT id, user_name, direction, occurred_at
		FROM transactions
		ORDER BY id ASC;
	`
)

// PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade using pgx.
// IDs come from an identity column and occurred_at from the column default, so
// allocation is atomic across concurrent appends.
type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new PgxTransactionRepository.
func NewPgxTransactionRepository(db DBTX) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// AppendTransaction inserts a transaction and returns it as stored.
func (r *PgxTransactionRepository) AppendTransaction(ctx context.Context, user string, direction domain.Direction) (*domain.Transaction, error) {
	var modelTxn models.Transaction
	err := r.Pool.QueryRow(ctx, insertTransactionQuery, user, string(direction)).Scan(
		&modelTxn.ID, &modelTxn.UserName, &modelTxn.Direction, &modelTxn.OccurredAt,
	)
	if err != nil {
		return nil, apperrors.NewStoreWriteError("failed to insert transaction", err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	domainTxn.OccurredAt = domainTxn.OccurredAt.UTC()
	return &domainTxn, nil
}

// ListTransactions retrieves all transactions ordered by ID.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, listTransactionsQuery)
	if err != nil {
		return nil, apperrors.NewStoreReadError("failed to list transactions", err)
	}
	defer rows.Close()

	modelTxns := make([]models.Transaction, 0)
	for rows.Next() {
		var modelTxn models.Transaction
		if err := rows.Scan(&modelTxn.ID, &modelTxn.UserName, &modelTxn.Direction, &modelTxn.OccurredAt); err != nil {
			return nil, apperrors.NewStoreReadError("failed to scan transaction", err)
		}
		modelTxn.OccurredAt = modelTxn.OccurredAt.UTC()
		modelTxns = append(modelTxns, modelTxn)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreReadError("error iterating transactions", err)
	}

	return mapping.ToDomainTransactions(modelTxns), nil
}
