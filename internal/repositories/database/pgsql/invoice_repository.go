package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
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

type PgxInvoiceRepository struct {
	BaseRepository
	// newBackOff yields a fresh retry schedule per creation attempt. Injected
	// so tests can swap in an immediate policy.
	newBackOff func() backoff.BackOff
}

// DefaultCounterBackOff builds the production retry schedule for invoice
// number assignment: short exponential waits capped by maxRetries attempts.
func DefaultCounterBackOff(maxRetries uint64) func() backoff.BackOff {
	return func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 5 * time.Millisecond
		b.MaxInterval = 100 * time.Millisecond
		return backoff.WithMaxRetries(b, maxRetries)
	}
}

func newPgxInvoiceRepository(pool *pgxpool.Pool, newBackOff func() backoff.BackOff) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
		newBackOff:     newBackOff,
	}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, tenant_id, invoice_number, invoice_date, due_date, customer_id,
		customer_snapshot, items, subtotal, total_gst, total, notes, status,
		created_at, created_by, last_updated_at, last_updated_by`

func scanInvoiceRow(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.TenantID,
		&m.InvoiceNumber,
		&m.InvoiceDate,
		&m.DueDate,
		&m.CustomerID,
		&m.CustomerJSON,
		&m.ItemsJSON,
		&m.Subtotal,
		&m.TotalGst,
		&m.Total,
		&m.Notes,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// isRetryableWriteError reports whether the creation transaction lost to a
// concurrent writer and is worth retrying with a fresh transaction.
func isRetryableWriteError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "40001", // serialization_failure
		"40P01", // deadlock_detected
		"23505": // unique_violation on the assigned number
		return true
	}
	return false
}

// CreateInvoiceWithNumber assigns the next sequence value for the invoice's
// (tenant, year) pair and persists the invoice in the same transaction, so
// the counter increment and the invoice row commit or roll back together.
// Write contention restarts the whole transaction under the injected backoff
// schedule; when the schedule is exhausted no invoice exists and the caller
// sees apperrors.ErrConflict.
func (r *PgxInvoiceRepository) CreateInvoiceWithNumber(ctx context.Context, invoice domain.Invoice, prefix string) (*domain.Invoice, error) {
	m, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to serialize invoice", err)
	}
	year := invoice.Date.Year()

	var assignedNumber string
	attempt := func() error {
		tx, err := r.Begin(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		defer r.Rollback(ctx, tx)

		counterQuery := `
			INSERT INTO invoice_counters (owner_id, year, current_count)
			VALUES ($1, $2, 1)
			ON CONFLICT (owner_id, year)
			DO UPDATE SET current_count = invoice_counters.current_count + 1
			RETURNING current_count;
		`
		var sequence int64
		if err := tx.QueryRow(ctx, counterQuery, invoice.TenantID, year).Scan(&sequence); err != nil {
			if isRetryableWriteError(err) {
				return err
			}
			return backoff.Permanent(apperrors.NewAppError(500, "failed to advance invoice counter", err))
		}

		number := domain.FormatInvoiceNumber(prefix, year, sequence)
		insertQuery := `
			INSERT INTO invoices (invoice_id, tenant_id, invoice_number, invoice_date, due_date, customer_id,
				customer_snapshot, items, subtotal, total_gst, total, notes, status,
				created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
		`
		_, err = tx.Exec(ctx, insertQuery,
			m.InvoiceID,
			m.TenantID,
			number,
			m.InvoiceDate,
			m.DueDate,
			m.CustomerID,
			m.CustomerJSON,
			m.ItemsJSON,
			m.Subtotal,
			m.TotalGst,
			m.Total,
			m.Notes,
			m.Status,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			if isRetryableWriteError(err) {
				return err
			}
			return backoff.Permanent(apperrors.NewAppError(500, "failed to insert invoice", err))
		}

		if err := r.Commit(ctx, tx); err != nil {
			if isRetryableWriteError(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		assignedNumber = number
		return nil
	}

	if err := backoff.Retry(attempt, backoff.WithContext(r.newBackOff(), ctx)); err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			return nil, permanent.Err
		}
		return nil, apperrors.NewAppError(409, "invoice number assignment kept losing to concurrent writers", apperrors.ErrConflict)
	}

	invoice.InvoiceNumber = assignedNumber
	return &invoice, nil
}

// PeekNextSequence returns current_count+1 without touching the counter. The
// value is a display hint only and may be overtaken before creation commits.
func (r *PgxInvoiceRepository) PeekNextSequence(ctx context.Context, ownerID string, year int) (int64, error) {
	query := `SELECT current_count FROM invoice_counters WHERE owner_id = $1 AND year = $2;`
	var current int64
	err := r.Pool.QueryRow(ctx, query, ownerID, year).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 1, nil
		}
		return 0, apperrors.NewAppError(500, "failed to read invoice counter for "+ownerID, err)
	}
	return current + 1, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, tenantID string, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE tenant_id = $1 AND invoice_id = $2;`
	m, err := scanInvoiceRow(r.Pool.QueryRow(ctx, query, tenantID, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice by ID "+invoiceID, err)
	}
	d, err := mapping.ToDomainInvoice(m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode invoice "+invoiceID, err)
	}
	return &d, nil
}

// ListInvoicesByTenant pages through a tenant's invoices ordered by invoice
// date then creation time, newest first.
func (r *PgxInvoiceRepository) ListInvoicesByTenant(ctx context.Context, tenantID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + invoiceColumns + ` FROM invoices WHERE tenant_id = $1`
	orderByClause := `ORDER BY invoice_date DESC, created_at DESC`

	args := []interface{}{tenantID}
	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		query += ` AND (invoice_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query invoices for tenant "+tenantID, err)
	}
	defer rows.Close()

	ms := make([]models.Invoice, 0, fetchLimit)
	for rows.Next() {
		m, err := scanInvoiceRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}

	var newNextToken *string
	if len(ms) > limit {
		last := ms[limit-1]
		token := pagination.EncodeToken(last.InvoiceDate, last.CreatedAt)
		newNextToken = &token
		ms = ms[:limit]
	}
	ds, err := mapping.ToDomainInvoiceSlice(ms)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to decode invoice page", err)
	}
	return ds, newNextToken, nil
}

// UpdateInvoice rewrites the mutable fields only. invoice_number, tenant_id
// and the creation audit columns are deliberately absent from the SET list.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	m, err := mapping.ToModelInvoice(invoice)
	if err != nil {
		return apperrors.NewAppError(500, "failed to serialize invoice", err)
	}
	query := `
		UPDATE invoices
		SET invoice_date = $3, due_date = $4, customer_snapshot = $5, items = $6,
			subtotal = $7, total_gst = $8, total = $9, notes = $10, status = $11,
			last_updated_at = $12, last_updated_by = $13
		WHERE tenant_id = $1 AND invoice_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TenantID,
		m.InvoiceID,
		m.InvoiceDate,
		m.DueDate,
		m.CustomerJSON,
		m.ItemsJSON,
		m.Subtotal,
		m.TotalGst,
		m.Total,
		m.Notes,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice "+invoice.InvoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, tenantID string, invoiceID string, status domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE invoices
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $1 AND invoice_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, tenantID, invoiceID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of invoice "+invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, tenantID string, invoiceID string) error {
	query := `DELETE FROM invoices WHERE tenant_id = $1 AND invoice_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, tenantID, invoiceID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete invoice "+invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
