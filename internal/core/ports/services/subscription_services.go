package services

import (
	"context"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/dto"
)

// SubscriptionReaderSvc defines read operations for subscription data
type SubscriptionReaderSvc interface {
	// GetSubscriptionForTenant retrieves a tenant's current subscription.
	// A subscription past its end date is moved to expired before returning;
	// expiry is only ever detected here, on read.
	GetSubscriptionForTenant(ctx context.Context, tenantID string) (*domain.Subscription, error)
}

// SubscriptionWriterSvc defines write operations for subscription data
type SubscriptionWriterSvc interface {
	// CreateSubscription starts a subscription on a tenant and links it.
	CreateSubscription(ctx context.Context, session *domain.Session, tenantID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error)

	// UpdateSubscriptionStatus applies a validated status transition.
	UpdateSubscriptionStatus(ctx context.Context, session *domain.Session, subscriptionID string, status domain.SubscriptionStatus) (*domain.Subscription, error)
}

// SubscriptionSvcFacade combines all subscription-related service interfaces
type SubscriptionSvcFacade interface {
	SubscriptionReaderSvc
	SubscriptionWriterSvc
}
