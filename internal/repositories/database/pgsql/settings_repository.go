package pgsql

import (
	"context"
	"errors"

	"github.com/digitalavenger/leadbill/internal/apperrors"
	"github.com/digitalavenger/leadbill/internal/core/domain"
	portsrepo "github.com/digitalavenger/leadbill/internal/core/ports/repositories"
	"github.com/digitalavenger/leadbill/internal/models"
	"github.com/digitalavenger/leadbill/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

const settingsColumns = `settings_id, tenant_id, name, address, phone, email, website, gstin, pan,
		logo_url, invoice_prefix, bank_name, account_number, ifsc_code, branch_name,
		created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxSettingsRepository) FindSettingsByTenantID(ctx context.Context, tenantID string) (*domain.CompanySettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM company_settings WHERE tenant_id = $1;`
	var m models.CompanySettings
	err := r.Pool.QueryRow(ctx, query, tenantID).Scan(
		&m.SettingsID,
		&m.TenantID,
		&m.Name,
		&m.Address,
		&m.Phone,
		&m.Email,
		&m.Website,
		&m.GSTIN,
		&m.PAN,
		&m.LogoURL,
		&m.InvoicePrefix,
		&m.BankName,
		&m.AccountNumber,
		&m.IFSCCode,
		&m.BranchName,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find settings for tenant "+tenantID, err)
	}
	d := mapping.ToDomainCompanySettings(m)
	return &d, nil
}

// SaveSettings upserts the one settings row per tenant.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.CompanySettings) error {
	m := mapping.ToModelCompanySettings(settings)
	query := `
		INSERT INTO company_settings (settings_id, tenant_id, name, address, phone, email, website, gstin, pan,
			logo_url, invoice_prefix, bank_name, account_number, ifsc_code, branch_name,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (tenant_id) DO UPDATE SET
			name = EXCLUDED.name,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			website = EXCLUDED.website,
			gstin = EXCLUDED.gstin,
			pan = EXCLUDED.pan,
			invoice_prefix = EXCLUDED.invoice_prefix,
			bank_name = EXCLUDED.bank_name,
			account_number = EXCLUDED.account_number,
			ifsc_code = EXCLUDED.ifsc_code,
			branch_name = EXCLUDED.branch_name,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SettingsID,
		m.TenantID,
		m.Name,
		m.Address,
		m.Phone,
		m.Email,
		m.Website,
		m.GSTIN,
		m.PAN,
		m.LogoURL,
		m.InvoicePrefix,
		m.BankName,
		m.AccountNumber,
		m.IFSCCode,
		m.BranchName,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save settings for tenant "+settings.TenantID, err)
	}
	return nil
}

func (r *PgxSettingsRepository) UpdateLogoURL(ctx context.Context, tenantID string, logoURL string, updatedBy string) error {
	query := `
		UPDATE company_settings
		SET logo_url = $2, last_updated_at = now(), last_updated_by = $3
		WHERE tenant_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, tenantID, logoURL, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update logo URL for tenant "+tenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
