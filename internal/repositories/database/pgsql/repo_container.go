package pgsql

import (
	"github.com/cenkalti/backoff/v4"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
// counterMaxRetries bounds how often invoice number assignment restarts its
// transaction under write contention.
func NewRepositoryProvider(dbPool *pgxpool.Pool, counterMaxRetries uint64) portsrepo.RepositoryProvider {
	return NewRepositoryProviderWithBackOff(dbPool, DefaultCounterBackOff(counterMaxRetries))
}

// NewRepositoryProviderWithBackOff allows injecting a custom retry schedule,
// used by tests that cannot afford real waits.
func NewRepositoryProviderWithBackOff(dbPool *pgxpool.Pool, newBackOff func() backoff.BackOff) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		TenantRepo:       newPgxTenantRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
		CustomerRepo:     newPgxCustomerRepository(dbPool),
		LeadRepo:         newPgxLeadRepository(dbPool),
		InvoiceRepo:      newPgxInvoiceRepository(dbPool, newBackOff),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
	}
}
