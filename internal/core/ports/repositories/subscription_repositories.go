package repositories

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
)

// SubscriptionReader defines read operations for subscription data
type SubscriptionReader interface {
	// FindSubscriptionByID retrieves a specific subscription by its ID.
	FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error)

	// FindSubscriptionByTenantID retrieves the current subscription for a tenant.
	FindSubscriptionByTenantID(ctx context.Context, tenantID string) (*domain.Subscription, error)

	// FindSubscriptions retrieves a paginated list of subscriptions.
	FindSubscriptions(ctx context.Context, limit int, offset int) ([]domain.Subscription, error)
}

// SubscriptionWriter defines write operations for subscription data
type SubscriptionWriter interface {
	// SaveSubscription persists a new subscription and links it to its tenant.
	SaveSubscription(ctx context.Context, subscription domain.Subscription) error

	// UpdateSubscriptionStatus moves a subscription to a new status.
	UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status domain.SubscriptionStatus, updatedBy string, updatedAt time.Time) error
}

// SubscriptionRepositoryFacade combines all subscription-related repository interfaces
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
}
