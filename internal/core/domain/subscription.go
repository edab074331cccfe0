package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionPlan identifies the purchased plan tier.
type SubscriptionPlan string

const (
	PlanTrial   SubscriptionPlan = "trial"
	PlanStarter SubscriptionPlan = "starter"
	PlanGrowth  SubscriptionPlan = "growth"
)

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionTrial     SubscriptionStatus = "trial"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionSuspended SubscriptionStatus = "suspended"
)

// Subscription links a tenant to a paid (or trial) plan for a period.
type Subscription struct {
	SubscriptionID string             `json:"subscriptionID"` // Primary Key (e.g., UUID)
	TenantID       string             `json:"tenantID"`       // FK -> tenants.tenant_id
	Plan           SubscriptionPlan   `json:"plan"`
	Status         SubscriptionStatus `json:"status"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        time.Time          `json:"endDate"`
	Amount         decimal.Decimal    `json:"amount"`
	AuditFields
}

// IsActiveAt reports whether the subscription grants access at the given
// instant. Expiry is detected lazily here, never via a background job, so
// callers must re-evaluate on every access check.
func (s *Subscription) IsActiveAt(now time.Time) bool {
	if s == nil {
		return false
	}
	if s.Status != SubscriptionActive && s.Status != SubscriptionTrial {
		return false
	}
	return now.Before(s.EndDate)
}

// validTransitions encodes the allowed manual status moves.
// trial -> active (payment), active -> suspended (admin),
// suspended -> active (reactivation). Expiry happens lazily on read and is
// reachable from trial or active; nothing leaves expired except replacement
// by a new subscription record.
var validTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	SubscriptionTrial:     {SubscriptionActive, SubscriptionExpired},
	SubscriptionActive:    {SubscriptionSuspended, SubscriptionExpired},
	SubscriptionSuspended: {SubscriptionActive},
	SubscriptionExpired:   {},
}

// CanTransition reports whether moving from one status to another is allowed.
func CanTransition(from, to SubscriptionStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
