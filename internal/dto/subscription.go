package dto

import (
	"time"

	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSubscriptionRequest defines data for starting a subscription on a tenant.
type CreateSubscriptionRequest struct {
	Plan      string          `json:"plan" binding:"required,oneof=trial starter growth"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	StartDate time.Time       `json:"startDate" binding:"required"`
	EndDate   time.Time       `json:"endDate" binding:"required"`
}

// UpdateSubscriptionStatusRequest defines a requested status transition.
type UpdateSubscriptionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active trial expired suspended"`
}

// SubscriptionResponse defines data returned for a subscription.
type SubscriptionResponse struct {
	SubscriptionID string          `json:"subscriptionID"`
	TenantID       string          `json:"tenantID"`
	Plan           string          `json:"plan"`
	Status         string          `json:"status"`
	StartDate      time.Time       `json:"startDate"`
	EndDate        time.Time       `json:"endDate"`
	Amount         decimal.Decimal `json:"amount"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToSubscriptionResponse converts domain.Subscription to DTO.
func ToSubscriptionResponse(s *domain.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID: s.SubscriptionID,
		TenantID:       s.TenantID,
		Plan:           string(s.Plan),
		Status:         string(s.Status),
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		Amount:         s.Amount,
		CreatedAt:      s.CreatedAt,
	}
}
