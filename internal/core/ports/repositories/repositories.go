package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	TenantRepo       TenantRepositoryFacade
	SubscriptionRepo SubscriptionRepositoryFacade
	CustomerRepo     CustomerRepositoryFacade
	LeadRepo         LeadRepositoryFacade
	InvoiceRepo      InvoiceRepositoryFacade
	SettingsRepo     SettingsRepositoryFacade
	ReportingRepo    ReportingRepository
}
