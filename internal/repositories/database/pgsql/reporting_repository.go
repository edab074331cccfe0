package pgsql

import (
	"context"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ReportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure ReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

func (r *ReportingRepository) GetTenantCounts(ctx context.Context) (domain.TenantCounts, error) {
	query := `
		SELECT count(*),
			count(*) FILTER (WHERE is_active),
			count(*) FILTER (WHERE NOT is_active)
		FROM tenants;
	`
	var counts domain.TenantCounts
	if err := r.Pool.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active, &counts.Inactive); err != nil {
		return domain.TenantCounts{}, apperrors.NewAppError(500, "failed to count tenants", err)
	}
	return counts, nil
}

// GetActiveSubscriptionRevenue sums amounts over subscriptions that are live
// at now, and separately those started in now's calendar month. A trial or
// active row past its end date is not yet flipped to expired but contributes
// nothing here.
func (r *ReportingRepository) GetActiveSubscriptionRevenue(ctx context.Context, now time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT COALESCE(sum(amount), 0),
			COALESCE(sum(amount) FILTER (WHERE date_trunc('month', start_date) = date_trunc('month', $1::timestamptz)), 0)
		FROM subscriptions
		WHERE status IN ('active', 'trial') AND end_date > $1;
	`
	var total, monthly decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, now).Scan(&total, &monthly); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum subscription revenue", err)
	}
	return total, monthly, nil
}

func (r *ReportingRepository) GetRecentTenants(ctx context.Context, limit int) ([]domain.Tenant, error) {
	if limit <= 0 {
		limit = 5
	}
	tenantRepo := PgxTenantRepository{BaseRepository: r.BaseRepository}
	return tenantRepo.FindTenants(ctx, limit, 0)
}

func (r *ReportingRepository) GetRecentSubscriptions(ctx context.Context, limit int) ([]domain.Subscription, error) {
	if limit <= 0 {
		limit = 5
	}
	subRepo := PgxSubscriptionRepository{BaseRepository: r.BaseRepository}
	return subRepo.FindSubscriptions(ctx, limit, 0)
}
