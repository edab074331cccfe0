package dto

import (
	"github.com/digitalavenger/leadbill/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TenantCountsResponse groups tenant totals by state.
type TenantCountsResponse struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// PlatformSummaryResponse is the super-admin dashboard payload.
type PlatformSummaryResponse struct {
	Tenants             TenantCountsResponse   `json:"tenants"`
	UserCount           int64                  `json:"userCount"`
	TotalRevenue        decimal.Decimal        `json:"totalRevenue"`
	MonthlyRevenue      decimal.Decimal        `json:"monthlyRevenue"`
	RecentTenants       []TenantResponse       `json:"recentTenants"`
	RecentSubscriptions []SubscriptionResponse `json:"recentSubscriptions"`
}

// ToPlatformSummaryResponse converts domain.PlatformSummary to DTO.
func ToPlatformSummaryResponse(s *domain.PlatformSummary) PlatformSummaryResponse {
	recentTenants := make([]TenantResponse, len(s.RecentTenants))
	for i := range s.RecentTenants {
		recentTenants[i] = ToTenantResponse(&s.RecentTenants[i])
	}
	recentSubs := make([]SubscriptionResponse, len(s.RecentSubscriptions))
	for i := range s.RecentSubscriptions {
		recentSubs[i] = ToSubscriptionResponse(&s.RecentSubscriptions[i])
	}
	return PlatformSummaryResponse{
		Tenants: TenantCountsResponse{
			Total:    s.Tenants.Total,
			Active:   s.Tenants.Active,
			Inactive: s.Tenants.Inactive,
		},
		UserCount:           s.UserCount,
		TotalRevenue:        s.TotalRevenue,
		MonthlyRevenue:      s.MonthlyRevenue,
		RecentTenants:       recentTenants,
		RecentSubscriptions: recentSubs,
	}
}
