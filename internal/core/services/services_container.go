package services

import (
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fileStore portssvc.FileStore) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Subscription service comes first: session resolution in the tenant
	// service needs it to decide module availability.
	container.Subscription = NewSubscriptionService(repos.SubscriptionRepo, repos.TenantRepo)
	container.Tenant = NewTenantService(repos.TenantRepo, container.Subscription)

	container.User = NewUserService(repos.UserRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Lead = NewLeadService(repos.LeadRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.CustomerRepo, repos.SettingsRepo)
	container.Settings = NewSettingsService(repos.SettingsRepo, fileStore)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.UserRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
