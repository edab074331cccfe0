package repositories

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines read operations for platform-wide dashboard data
type ReportingRepository interface {
	// GetTenantCounts returns tenant totals grouped by active state.
	GetTenantCounts(ctx context.Context) (domain.TenantCounts, error)

	// GetActiveSubscriptionRevenue returns the total revenue over live
	// subscriptions and the portion from subscriptions started in the
	// calendar month containing now.
	GetActiveSubscriptionRevenue(ctx context.Context, now time.Time) (total decimal.Decimal, monthly decimal.Decimal, err error)

	// GetRecentTenants returns the most recently created tenants.
	GetRecentTenants(ctx context.Context, limit int) ([]domain.Tenant, error)

	// GetRecentSubscriptions returns the most recently created subscriptions.
	GetRecentSubscriptions(ctx context.Context, limit int) ([]domain.Subscription, error)
}
