package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
)

// PgxProductRepository persists products in Postgres.
type PgxProductRepository struct {
	BaseRepository
}

// NewProductRepository creates a new repository for product data.
func NewProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepository {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepository = (*PgxProductRepository)(nil)

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, price, stock, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Price,
		product.Stock,
		product.CreatedAt,
		product.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("product %q", product.Name))
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT product_id, name, price, stock, created_at, last_updated_at
		FROM products
		WHERE product_id = $1;
	`
	var p domain.Product
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&p.ProductID,
		&p.Name,
		&p.Price,
		&p.Stock,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	return &p, nil
}

// ListProducts retrieves all products, or only those with positive stock.
func (r *PgxProductRepository) ListProducts(ctx context.Context, inStockOnly bool) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, price, stock, created_at, last_updated_at
		FROM products
		WHERE NOT $1::boolean OR stock > 0
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, inStockOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ProductID,
			&p.Name,
			&p.Price,
			&p.Stock,
			&p.CreatedAt,
			&p.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// UpdateProduct updates an existing product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, price = $3, stock = $4, last_updated_at = $5
		WHERE product_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Price,
		product.Stock,
		product.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("product %s", product.ProductID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product. Historical purchase, sale or return lines
// referencing it turn the delete into apperrors.ErrRestricted and the row
// remains.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("product %s", productID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListProductEvents returns the product's purchase and sale lines interleaved
// by their parent document date, oldest first.
func (r *PgxProductRepository) ListProductEvents(ctx context.Context, productID string) ([]domain.ProductEvent, error) {
	query := `
		SELECT 'Purchase' AS type, pi.quantity, p.date, pi.purchase_price AS unit_price
		FROM purchase_items pi
		JOIN purchases p ON pi.purchase_id = p.purchase_id
		WHERE pi.product_id = $1
		UNION ALL
		SELECT 'Sale' AS type, si.quantity, s.date, si.price AS unit_price
		FROM sales_items si
		JOIN sales s ON si.sale_id = s.sale_id
		WHERE si.product_id = $1
		ORDER BY date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query product events for %s: %w", productID, err)
	}
	defer rows.Close()

	events := []domain.ProductEvent{}
	for rows.Next() {
		var e domain.ProductEvent
		if err := rows.Scan(&e.Type, &e.Quantity, &e.Date, &e.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan product event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product event rows: %w", err)
	}
	return events, nil
}
