package mysql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SscSPs/fx_quote_app/internal/apperrors"
	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/require"
)

var transactionColumns = []string{"id", "user_name", "direction", "occurred_at"}

func newMockedRepository(t *testing.T) (*SQLTransactionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLTransactionRepository(db)
	return repo, mock
}

func TestSQLTransactionRepository_AppendTransaction(t *testing.T) {
	assert := require.New(t)
	repo, mock := newMockedRepository(t)
	fixed := time.Date(2024, 6, 10, 12, 30, 15, 123456789, time.UTC)
	repo.now = func() time.Time { return fixed }
	user := faker.Name()

	mock.ExpectExec(regexp.QuoteMeta(insertTransactionQuery)).
		WithArgs(user, "BRL_TO_USD", fixed.Truncate(time.Microsecond)).
		WillReturnResult(sqlmock.NewResult(42, 1))

	txn, err := repo.AppendTransaction(context.Background(), user, domain.BRLToUSD)

	assert.NoError(err)
	assert.Equal(int64(42), txn.ID)
	assert.Equal(user, txn.User)
	assert.Equal(domain.BRLToUSD, txn.Direction)
	assert.Equal(fixed.Truncate(time.Microsecond), txn.OccurredAt)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestSQLTransactionRepository_AppendTransaction_Failure(t *testing.T) {
	assert := require.New(t)
	repo, mock := newMockedRepository(t)
	cause := errors.New("Error 1146: Table 'fxq.transactions' doesn't exist")

	mock.ExpectExec(regexp.QuoteMeta(insertTransactionQuery)).
		WillReturnError(cause)

	txn, err := repo.AppendTransaction(context.Background(), "Ana", domain.USDToBRL)

	assert.Nil(txn)
	assert.ErrorIs(err, apperrors.ErrStoreWrite)
	assert.ErrorIs(err, cause)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestSQLTransactionRepository_AppendTransaction_NoInsertID(t *testing.T) {
	assert := require.New(t)
	repo, mock := newMockedRepository(t)

	mock.ExpectExec(regexp.QuoteMeta(insertTransactionQuery)).
		WillReturnResult(sqlmock.NewErrorResult(errors.New("no id")))

	txn, err := repo.AppendTransaction(context.Background(), "Ana", domain.USDToBRL)

	assert.Nil(txn)
	assert.ErrorIs(err, apperrors.ErrStoreWrite)
}

func TestSQLTransactionRepository_ListTransactions(t *testing.T) {
	assert := require.New(t)
	repo, mock := newMockedRepository(t)
	first := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(listTransactionsQuery)).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(int64(1), "Ana", "BRL_TO_USD", first).
			AddRow(int64(2), "Bob", "USD_TO_BRL", second))

	txns, err := repo.ListTransactions(context.Background())

	assert.NoError(err)
	assert.Equal([]domain.Transaction{
		{ID: 1, User: "Ana", Direction: domain.BRLToUSD, OccurredAt: first},
		{ID: 2, User: "Bob", Direction: domain.USDToBRL, OccurredAt: second},
	}, txns)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestSQLTransactionRepository_ListTransactions_Empty(t *testing.T) {
	assert := require.New(t)
	repo, mock := newMockedRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta(listTransactionsQuery)).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	txns, err := repo.ListTransactions(context.Background())

	assert.NoError(err)
	assert.NotNil(txns)
	assert.Empty(txns)
}

func TestSQLTransactionRepository_ListTransactions_Failures(t *testing.T) {
	t.Run("query error", func(t *testing.T) {
		assert := require.New(t)
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(listTransactionsQuery)).WillReturnError(errors.New("bad connection"))

		txns, err := repo.ListTransactions(context.Background())

		assert.Nil(txns)
		assert.ErrorIs(err, apperrors.ErrStoreRead)
	})

	t.Run("row error discards partial result", func(t *testing.T) {
		assert := require.New(t)
		repo, mock := newMockedRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(listTransactionsQuery)).
			WillReturnRows(sqlmock.NewRows(transactionColumns).
				AddRow(int64(1), "Ana", "BRL_TO_USD", time.Now()).
				AddRow(int64(2), "Bob", "USD_TO_BRL", time.Now()).
				RowError(1, errors.New("lost connection")))

		txns, err := repo.ListTransactions(context.Background())

		assert.Nil(txns)
		assert.ErrorIs(err, apperrors.ErrStoreRead)
	})
}
