package services

import (
	"github.com/SscSPs/fx_quote_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/fx_quote_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_quote_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(quoteClient clients.QuoteClient, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Conversion: NewConversionService(quoteClient, repos.TransactionRepo),
	}
}
