package models

// Customer is the persisted shape of a customer row.
type Customer struct {
	CustomerID string `db:"customer_id"`
	TenantID   string `db:"tenant_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
	Phone      string `db:"phone"`
	Email      string `db:"email"`
	GSTIN      string `db:"gstin"`
	AuditFields
}
