package pgsql

import (
	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: NewPgxTransactionRepository(db),
	}
}
