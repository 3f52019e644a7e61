package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
)

// TransactionRepository is an in-memory implementation of the transaction store.
// It is safe for concurrent use. Data is lost on restart; use it for local
// runs and tests only.
type TransactionRepository struct {
	mu     sync.RWMutex
	txns   []domain.Transaction
	nextID int64
	now    func() time.Time
}

// NewTransactionRepository creates an empty in-memory store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		txns:   make([]domain.Transaction, 0),
		nextID: 1,
		now:    time.Now,
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// Ping always succeeds.
func (r *TransactionRepository) Ping(ctx context.Context) error {
	return nil
}

// AppendTransaction assigns the next ID under the write lock and stores the record.
func (r *TransactionRepository) AppendTransaction(ctx context.Context, user string, direction domain.Direction) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn := domain.Transaction{
		ID:         r.nextID,
		User:       user,
		Direction:  direction,
		OccurredAt: r.now().UTC(),
	}
	r.nextID++
	r.txns = append(r.txns, txn)

	return &txn, nil
}

// ListTransactions returns a copy of all records in insertion order.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, len(r.txns))
	copy(out, r.txns)
	return out, nil
}

// Count returns the number of stored transactions.
func (r *TransactionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.txns)
}
