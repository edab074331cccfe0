package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	"github.com/digitalavenger/leadbill/internal/models"
	"github.com/digitalavenger/leadbill/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSubscriptionRepository struct {
	BaseRepository
}

func newPgxSubscriptionRepository(pool *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &PgxSubscriptionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSubscriptionRepository implements portsrepo.SubscriptionRepositoryFacade
var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

const subscriptionColumns = `subscription_id, tenant_id, plan, status, start_date, end_date, amount,
		created_at, created_by, last_updated_at, last_updated_by`

func scanSubscriptionRow(row pgx.Row) (models.Subscription, error) {
	var m models.Subscription
	err := row.Scan(
		&m.SubscriptionID,
		&m.TenantID,
		&m.Plan,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveSubscription inserts the subscription and points the tenant at it,
// both within one transaction.
func (r *PgxSubscriptionRepository) SaveSubscription(ctx context.Context, subscription domain.Subscription) error {
	m := mapping.ToModelSubscription(subscription)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO subscriptions (subscription_id, tenant_id, plan, status, start_date, end_date, amount,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.SubscriptionID,
		m.TenantID,
		m.Plan,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert subscription", err)
	}

	linkQuery := `
		UPDATE tenants
		SET subscription_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE tenant_id = $1;
	`
	tag, err := tx.Exec(ctx, linkQuery, m.TenantID, m.SubscriptionID, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to link subscription to tenant "+m.TenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

func (r *PgxSubscriptionRepository) FindSubscriptionByID(ctx context.Context, subscriptionID string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE subscription_id = $1;`
	m, err := scanSubscriptionRow(r.Pool.QueryRow(ctx, query, subscriptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find subscription by ID "+subscriptionID, err)
	}
	d := mapping.ToDomainSubscription(m)
	return &d, nil
}

// FindSubscriptionByTenantID returns the subscription the tenant currently
// points at, falling back to the tenant's newest subscription when no link is
// set.
func (r *PgxSubscriptionRepository) FindSubscriptionByTenantID(ctx context.Context, tenantID string) (*domain.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions s
		WHERE s.tenant_id = $1
		ORDER BY (s.subscription_id = (SELECT t.subscription_id FROM tenants t WHERE t.tenant_id = $1)) DESC,
			s.created_at DESC
		LIMIT 1;
	`
	m, err := scanSubscriptionRow(r.Pool.QueryRow(ctx, query, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find subscription for tenant "+tenantID, err)
	}
	d := mapping.ToDomainSubscription(m)
	return &d, nil
}

func (r *PgxSubscriptionRepository) FindSubscriptions(ctx context.Context, limit int, offset int) ([]domain.Subscription, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + subscriptionColumns + `
		FROM subscriptions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query subscriptions", err)
	}
	defer rows.Close()

	ms := []models.Subscription{}
	for rows.Next() {
		m, err := scanSubscriptionRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan subscription row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating subscription rows", err)
	}
	return mapping.ToDomainSubscriptionSlice(ms), nil
}

func (r *PgxSubscriptionRepository) UpdateSubscriptionStatus(ctx context.Context, subscriptionID string, status domain.SubscriptionStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE subscriptions
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE subscription_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, subscriptionID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of subscription "+subscriptionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
