package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
)

// PgxSupplierRepository persists suppliers in Postgres.
type PgxSupplierRepository struct {
	BaseRepository
}

// NewSupplierRepository creates a new repository for supplier data.
func NewSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepository {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepository = (*PgxSupplierRepository)(nil)

// SaveSupplier inserts a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, name, phone_number, address, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	var address sql.NullString
	if supplier.Address != "" {
		address = sql.NullString{String: supplier.Address, Valid: true}
	}
	_, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.PhoneNumber,
		address,
		supplier.CreatedAt,
		supplier.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("supplier %q", supplier.Name))
	}
	return nil
}

// FindSupplierByID retrieves a single supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, phone_number, address, created_at, last_updated_at
		FROM suppliers
		WHERE supplier_id = $1;
	`
	var s domain.Supplier
	var address sql.NullString
	err := r.Pool.QueryRow(ctx, query, supplierID).Scan(
		&s.SupplierID, &s.Name, &s.PhoneNumber, &address, &s.CreatedAt, &s.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	if address.Valid {
		s.Address = address.String
	}
	return &s, nil
}

// ListSuppliers retrieves all suppliers ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, phone_number, address, created_at, last_updated_at
		FROM suppliers
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		var s domain.Supplier
		var address sql.NullString
		if err := rows.Scan(&s.SupplierID, &s.Name, &s.PhoneNumber, &address, &s.CreatedAt, &s.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		if address.Valid {
			s.Address = address.String
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}

// UpdateSupplier updates an existing supplier.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, phone_number = $3, address = $4, last_updated_at = $5
		WHERE supplier_id = $1;
	`
	var address sql.NullString
	if supplier.Address != "" {
		address = sql.NullString{String: supplier.Address, Valid: true}
	}
	cmdTag, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.PhoneNumber,
		address,
		supplier.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("supplier %s", supplier.SupplierID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteSupplier removes a supplier. Purchases referencing it turn the delete
// into apperrors.ErrRestricted.
func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM suppliers WHERE supplier_id = $1;`, supplierID)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("supplier %s", supplierID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
