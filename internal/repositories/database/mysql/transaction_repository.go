package mysql

import (
	"context"
	"database/sql"
	"time"

	"github.com/SscSPs/fx_quote_app/internal/apperrors"
	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
	"github.com/SscSPs/fx_quote_app/internal/models"
	"github.com/SscSPs/fx_quote_app/internal/utils/mapping"
)

const (
	insertTransactionQuery = "INSERT INTO transactions (user_name, direction, occurred_at) VALUES (?, ?, ?)"
	listTransactionsQuery  = "SELECT id, user_name, direction, occurred_at FROM transactions ORDER BY id ASC"
)

// SQLTransactionRepository implements portsrepo.TransactionRepositoryFacade on MySQL.
// IDs come from an AUTO_INCREMENT column.
type SQLTransactionRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLTransactionRepository creates a repository on an open *sql.DB.
func NewSQLTransactionRepository(db *sql.DB) *SQLTransactionRepository {
	return &SQLTransactionRepository{db: db, now: time.Now}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLTransactionRepository)(nil)

// Ping verifies the database is reachable.
func (r *SQLTransactionRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// AppendTransaction inserts a transaction stamped with the current UTC time.
func (r *SQLTransactionRepository) AppendTransaction(ctx context.Context, user string, direction domain.Direction) (*domain.Transaction, error) {
	// DATETIME(6) keeps microseconds
	modelTxn := mapping.ToModelTransaction(domain.Transaction{
		User:       user,
		Direction:  direction,
		OccurredAt: r.now().UTC().Truncate(time.Microsecond),
	})

	res, err := r.db.ExecContext(ctx, insertTransactionQuery, modelTxn.UserName, modelTxn.Direction, modelTxn.OccurredAt)
	if err != nil {
		return nil, apperrors.NewStoreWriteError("failed to insert transaction", err)
	}

	modelTxn.ID, err = res.LastInsertId()
	if err != nil {
		return nil, apperrors.NewStoreWriteError("failed to read inserted transaction id", err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

// ListTransactions retrieves all transactions ordered by ID.
func (r *SQLTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, listTransactionsQuery)
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
