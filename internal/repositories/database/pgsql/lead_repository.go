package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	"github.com/digitalavenger/leadbill/internal/models"
	"github.com/digitalavenger/leadbill/internal/utils/mapping"
	"github.com/digitalavenger/leadbill/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLeadRepository struct {
	BaseRepository
}

func newPgxLeadRepository(pool *pgxpool.Pool) portsrepo.LeadRepositoryFacade {
	return &PgxLeadRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxLeadRepository implements portsrepo.LeadRepositoryFacade
var _ portsrepo.LeadRepositoryFacade = (*PgxLeadRepository)(nil)

const leadColumns = `lead_id, tenant_id, lead_name, lead_date, mobile_number, email_address,
		service_required, budget, lead_status, notes,
		created_at, created_by, last_updated_at, last_updated_by`

func scanLeadRow(row pgx.Row) (models.Lead, error) {
	var m models.Lead
	err := row.Scan(
		&m.LeadID,
		&m.TenantID,
		&m.LeadName,
		&m.LeadDate,
		&m.MobileNumber,
		&m.EmailAddress,
		&m.ServiceRequired,
		&m.Budget,
		&m.LeadStatus,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) error {
	m := mapping.ToModelLead(lead)
	query := `
		INSERT INTO leads (lead_id, tenant_id, lead_name, lead_date, mobile_number, email_address,
			service_required, budget, lead_status, notes,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LeadID,
		m.TenantID,
		m.LeadName,
		m.LeadDate,
		m.MobileNumber,
		m.EmailAddress,
		m.ServiceRequired,
		m.Budget,
		m.LeadStatus,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save lead", err)
	}
	return nil
}

func (r *PgxLeadRepository) FindLeadByID(ctx context.Context, tenantID string, leadID string) (*domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE tenant_id = $1 AND lead_id = $2;`
	m, err := scanLeadRow(r.Pool.QueryRow(ctx, query, tenantID, leadID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find lead by ID "+leadID, err)
	}
	d := mapping.ToDomainLead(m)
	return &d, nil
}

// ListLeadsByTenant pages through a tenant's leads ordered by lead date then
// creation time, newest first. The opaque cursor encodes both sort keys.
func (r *PgxLeadRepository) ListLeadsByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Lead, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to know whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + leadColumns + ` FROM leads WHERE tenant_id = $1`
	orderByClause := `ORDER BY lead_date DESC, created_at DESC`

	args := []interface{}{tenantID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastLeadDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (lead_date, created_at) < ($2, $3)`
		args = append(args, lastLeadDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query leads for tenant "+tenantID, err)
	}
	defer rows.Close()

	ms := make([]models.Lead, 0, fetchLimit)
	for rows.Next() {
		m, err := scanLeadRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan lead row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating lead rows", err)
	}

	var newNextToken *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(last.LeadDate, last.CreatedAt)
		newNextToken = &token
		ms = ms[:limit]
	}
	return mapping.ToDomainLeadSlice(ms), newNextToken, nil
}

func (r *PgxLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	m := mapping.ToModelLead(lead)
	query := `
		UPDATE leads
		SET lead_name = $3, lead_date = $4, mobile_number = $5, email_address = $6,
			service_required = $7, budget = $8, notes = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE tenant_id = $1 AND lead_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.LeadID,
		m.LeadName,
		m.LeadDate,
		m.MobileNumber,
		m.EmailAddress,
		m.ServiceRequired,
		m.Budget,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update lead "+lead.LeadID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLeadRepository) UpdateLeadStatus(ctx context.Context, tenantID string, leadID string, status string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE leads
		SET lead_status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND lead_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, tenantID, leadID, status, updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of lead "+leadID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLeadRepository) DeleteLead(ctx context.Context, tenantID string, leadID string) error {
	query := `DELETE FROM leads WHERE tenant_id = $1 AND lead_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, tenantID, leadID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete lead "+leadID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLeadRepository) FindServiceOptions(ctx context.Context, tenantID string) ([]domain.ServiceOption, error) {
	query := `
		SELECT option_id, tenant_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM lead_service_options
		WHERE tenant_id = $1
		ORDER BY name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query service options for tenant "+tenantID, err)
	}
	defer rows.Close()

	ms := []models.ServiceOption{}
	for rows.Next() {
		var m models.ServiceOption
		if err := rows.Scan(&m.OptionID, &m.TenantID, &m.Name,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan service option row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating service option rows", err)
	}
	return mapping.ToDomainServiceOptionSlice(ms), nil
}

func (r *PgxLeadRepository) FindStatusOptions(ctx context.Context, tenantID string) ([]domain.StatusOption, error) {
	query := `
		SELECT option_id, tenant_id, name, sort_order, is_default, color,
			created_at, created_by, last_updated_at, last_updated_by
		FROM lead_status_options
		WHERE tenant_id = $1
		ORDER BY sort_order ASC, name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query status options for tenant "+tenantID, err)
	}
	defer rows.Close()

	ms := []models.StatusOption{}
	for rows.Next() {
		var m models.StatusOption
		if err := rows.Scan(&m.OptionID, &m.TenantID, &m.Name, &m.SortOrder, &m.IsDefault, &m.Color,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan status option row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating status option rows", err)
	}
	return mapping.ToDomainStatusOptionSlice(ms), nil
}

func (r *PgxLeadRepository) SaveServiceOption(ctx context.Context, option domain.ServiceOption) error {
	m := mapping.ToModelServiceOption(option)
	query := `
		INSERT INTO lead_service_options (option_id, tenant_id, name,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OptionID, m.TenantID, m.Name,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("service option " + option.Name + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save service option", err)
	}
	return nil
}

func (r *PgxLeadRepository) DeleteServiceOption(ctx context.Context, tenantID string, optionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM lead_service_options WHERE tenant_id = $1 AND option_id = $2;`, tenantID, optionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete service option "+optionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLeadRepository) SaveStatusOption(ctx context.Context, option domain.StatusOption) error {
	m := mapping.ToModelStatusOption(option)
	query := `
		INSERT INTO lead_status_options (option_id, tenant_id, name, sort_order, is_default, color,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OptionID, m.TenantID, m.Name, m.SortOrder, m.IsDefault, m.Color,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("status option " + option.Name + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save status option", err)
	}
	return nil
}

func (r *PgxLeadRepository) DeleteStatusOption(ctx context.Context, tenantID string, optionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM lead_status_options WHERE tenant_id = $1 AND option_id = $2;`, tenantID, optionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete status option "+optionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
