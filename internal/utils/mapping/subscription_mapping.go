package mapping

import (
	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/digitalavenger/leadbill/internal/models"
)

// ToModelSubscription converts a domain Subscription to a model Subscription
func ToModelSubscription(d domain.Subscription) models.Subscription {
	return models.Subscription{
		SubscriptionID: d.SubscriptionID,
		TenantID:       d.TenantID,
		Plan:           string(d.Plan),
		Status:         string(d.Status),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		Amount:         d.Amount,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSubscription converts a model Subscription to a domain Subscription
func ToDomainSubscription(m models.Subscription) domain.Subscription {
	return domain.Subscription{
		SubscriptionID: m.SubscriptionID,
		TenantID:       m.TenantID,
		Plan:           domain.SubscriptionPlan(m.Plan),
		Status:         domain.SubscriptionStatus(m.Status),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Amount:         m.Amount,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSubscriptionSlice converts a slice of model Subscriptions to domain Subscriptions
func ToDomainSubscriptionSlice(ms []models.Subscription) []domain.Subscription {
	ds := make([]domain.Subscription, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSubscription(m)
	}
	return ds
}
