package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	portssvc "github.com/digitalavenger/leadbill/internal/core/ports/services"
	"github.com/digitalavenger/leadbill/internal/dto"
	"github.com/google/uuid"
)

// subscriptionService implements the SubscriptionSvcFacade interface
type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
	tenantRepo       portsrepo.TenantReader
}

// NewSubscriptionService creates a new subscription service with the provided dependencies
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade, tenantRepo portsrepo.TenantReader) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{subscriptionRepo: subscriptionRepo, tenantRepo: tenantRepo}
}

// Ensure subscriptionService implements the SubscriptionSvcFacade interface
var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

// GetSubscriptionForTenant reads the tenant's subscription, flipping it to
// expired first when its end date has passed. This lazy flip is the only
// place expiry is detected; there is no background sweeper.
func (s *subscriptionService) GetSubscriptionForTenant(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	sub, err := s.subscriptionRepo.FindSubscriptionByTenantID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if (sub.Status == domain.SubscriptionActive || sub.Status == domain.SubscriptionTrial) && !now.Before(sub.EndDate) {
		if err := s.subscriptionRepo.UpdateSubscriptionStatus(ctx, sub.SubscriptionID, domain.SubscriptionExpired, sub.LastUpdatedBy, now); err != nil {
			// The stored row keeps its stale status but the caller still
			// sees the truth; IsActiveAt would deny access either way.
			s.LogError(ctx, err, "Failed to persist lazy subscription expiry",
				slog.String("subscription_id", sub.SubscriptionID))
		}
		sub.Status = domain.SubscriptionExpired
		sub.LastUpdatedAt = now
	}
	return sub, nil
}

func (s *subscriptionService) CreateSubscription(ctx context.Context, session *domain.Session, tenantID string, req dto.CreateSubscriptionRequest) (*domain.Subscription, error) {
	if err := s.RequirePermission(session, domain.PermManageSubscriptions); err != nil {
		return nil, err
	}
	if _, err := s.tenantRepo.FindTenantByID(ctx, tenantID); err != nil {
		return nil, err
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationFailedError("subscription end date must be after start date")
	}
	plan := domain.SubscriptionPlan(req.Plan)
	status := domain.SubscriptionActive
	if plan == domain.PlanTrial {
		status = domain.SubscriptionTrial
	}

	now := time.Now()
	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		TenantID:       tenantID,
		Plan:           plan,
		Status:         status,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Amount:         req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     session.Profile.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: session.Profile.UserID,
		},
	}
	if err := s.subscriptionRepo.SaveSubscription(ctx, sub); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Subscription created",
		slog.String("subscription_id", sub.SubscriptionID),
		slog.String("tenant_id", tenantID),
		slog.String("plan", string(plan)))
	return &sub, nil
}

func (s *subscriptionService) UpdateSubscriptionStatus(ctx context.Context, session *domain.Session, subscriptionID string, status domain.SubscriptionStatus) (*domain.Subscription, error) {
	if err := s.RequirePermission(session, domain.PermManageSubscriptions); err != nil {
		return nil, err
	}

	sub, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(sub.Status, status) {
		return nil, apperrors.NewValidationFailedError(
			"cannot move subscription from " + string(sub.Status) + " to " + string(status))
	}

	now := time.Now()
	if err := s.subscriptionRepo.UpdateSubscriptionStatus(ctx, subscriptionID, status, session.Profile.UserID, now); err != nil {
		return nil, err
	}
	sub.Status = status
	sub.LastUpdatedAt = now
	sub.LastUpdatedBy = session.Profile.UserID
	return sub, nil
}
