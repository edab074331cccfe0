package domain

import "github.com/shopspring/decimal"

// TenantCounts groups tenant totals by state for the platform dashboard.
type TenantCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

// PlatformSummary is the super-admin dashboard payload. Revenue figures are
// computed over subscriptions that are live at the time of the query.
type PlatformSummary struct {
	Tenants             TenantCounts    `json:"tenants"`
	UserCount           int64           `json:"userCount"`
	TotalRevenue        decimal.Decimal `json:"totalRevenue"`
	MonthlyRevenue      decimal.Decimal `json:"monthlyRevenue"`
	RecentTenants       []Tenant        `json:"recentTenants"`
	RecentSubscriptions []Subscription  `json:"recentSubscriptions"`
}
