package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is the persisted shape of a subscription row.
type Subscription struct {
	SubscriptionID string          `db:"subscription_id"`
	TenantID       string          `db:"tenant_id"`
	Plan           string          `db:"plan"`
	Status         string          `db:"status"`
	StartDate      time.Time       `db:"start_date"`
	EndDate        time.Time       `db:"end_date"`
	Amount         decimal.Decimal `db:"amount"`
	AuditFields
}
