package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
)

// PgxSaleRepository persists sales documents in Postgres.
type PgxSaleRepository struct {
	BaseRepository
}

// NewSaleRepository creates a new repository for sales data.
func NewSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepository {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepository = (*PgxSaleRepository)(nil)

// SaveSale inserts the sale with all its items and decrements product stock,
// all within one database transaction; a failure on any row rolls back the
// whole document.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	saleQuery := `
		INSERT INTO sales (sale_id, date, customer_name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	var customer sql.NullString
	if sale.CustomerName != "" {
		customer = sql.NullString{String: sale.CustomerName, Valid: true}
	}
	_, err = tx.Exec(ctx, saleQuery, sale.SaleID, sale.Date, customer, sale.CreatedAt, sale.LastUpdatedAt)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("sale %s", sale.SaleID))
	}

	itemQuery := `
		INSERT INTO sales_items (item_id, sale_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5);
	`
	stockQuery := `
		UPDATE products SET stock = stock - $2, last_updated_at = $3 WHERE product_id = $1;
	`
	batch := &pgx.Batch{}
	for _, it := range sale.Items {
		batch.Queue(itemQuery, it.ItemID, it.SaleID, it.ProductID, it.Quantity, it.Price)
		batch.Queue(stockQuery, it.ProductID, it.Quantity, sale.LastUpdatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapConstraintError(err, fmt.Sprintf("items for sale %s", sale.SaleID))
	}

	return r.Commit(ctx, tx)
}

// FindSaleByID retrieves a sale with its items.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	saleQuery := `
		SELECT sale_id, date, customer_name, created_at, last_updated_at
		FROM sales
		WHERE sale_id = $1;
	`
	var s domain.Sale
	var customer sql.NullString
	err := r.Pool.QueryRow(ctx, saleQuery, saleID).Scan(&s.SaleID, &s.Date, &customer, &s.CreatedAt, &s.LastUpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}
	if customer.Valid {
		s.CustomerName = customer.String
	}

	items, err := r.listSaleItems(ctx, saleID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

func (r *PgxSaleRepository) listSaleItems(ctx context.Context, saleID string) ([]domain.SalesItem, error) {
	query := `
		SELECT item_id, sale_id, product_id, quantity, price
		FROM sales_items
		WHERE sale_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for sale %s: %w", saleID, err)
	}
	defer rows.Close()

	items := []domain.SalesItem{}
	for rows.Next() {
		var it domain.SalesItem
		if err := rows.Scan(&it.ItemID, &it.SaleID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("failed to scan sales item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales item rows: %w", err)
	}
	return items, nil
}

// ListSales retrieves all sales with their items, newest first.
func (r *PgxSaleRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	query := `
		SELECT sale_id, date, customer_name, created_at, last_updated_at
		FROM sales
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var s domain.Sale
		var customer sql.NullString
		if err := rows.Scan(&s.SaleID, &s.Date, &customer, &s.CreatedAt, &s.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		if customer.Valid {
			s.CustomerName = customer.String
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}

	for i := range sales {
		items, err := r.listSaleItems(ctx, sales[i].SaleID)
		if err != nil {
			return nil, err
		}
		sales[i].Items = items
	}
	return sales, nil
}

// FindLastSalePrice returns the price and date of the most recent sale line
// for the product, ranked by the parent sale's date descending. A product
// with no sales yields apperrors.ErrNotFound.
func (r *PgxSaleRepository) FindLastSalePrice(ctx context.Context, productID string) (*domain.LastSalePrice, error) {
	query := `
		SELECT si.price, s.date
		FROM sales_items si
		JOIN sales s ON si.sale_id = s.sale_id
		WHERE si.product_id = $1
		ORDER BY s.date DESC
		LIMIT 1;
	`
	var p domain.LastSalePrice
	var date time.Time
	err := r.Pool.QueryRow(ctx, query, productID).Scan(&p.SellingPrice, &date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find last sale price for product %s: %w", productID, err)
	}
	p.Date = &date
	return &p, nil
}
