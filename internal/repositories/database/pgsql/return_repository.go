package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
)

// PgxReturnRepository persists sales and purchase returns in Postgres.
type PgxReturnRepository struct {
	BaseRepository
}

// NewReturnRepository creates a new repository for return data.
func NewReturnRepository(pool *pgxpool.Pool) portsrepo.ReturnRepository {
	return &PgxReturnRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReturnRepository = (*PgxReturnRepository)(nil)

// SaveSalesReturn inserts the return with all its items and restores product
// stock, all within one database transaction.
func (r *PgxReturnRepository) SaveSalesReturn(ctx context.Context, ret domain.SalesReturn) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	retQuery := `
		INSERT INTO sales_returns (return_id, date, reason, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	var reason sql.NullString
	if ret.Reason != "" {
		reason = sql.NullString{String: ret.Reason, Valid: true}
	}
	_, err = tx.Exec(ctx, retQuery, ret.ReturnID, ret.Date, reason, ret.CreatedAt, ret.LastUpdatedAt)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("sales return %s", ret.ReturnID))
	}

	itemQuery := `
		INSERT INTO sales_return_items (item_id, return_id, product_id, quantity, return_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	stockQuery := `
		UPDATE products SET stock = stock + $2, last_updated_at = $3 WHERE product_id = $1;
	`
	batch := &pgx.Batch{}
	for _, it := range ret.Items {
		batch.Queue(itemQuery, it.ItemID, it.ReturnID, it.ProductID, it.Quantity, it.ReturnPrice)
		batch.Queue(stockQuery, it.ProductID, it.Quantity, ret.LastUpdatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapConstraintError(err, fmt.Sprintf("items for sales return %s", ret.ReturnID))
	}

	return r.Commit(ctx, tx)
}

// ListSalesReturns retrieves all sales returns with their items, newest first.
func (r *PgxReturnRepository) ListSalesReturns(ctx context.Context) ([]domain.SalesReturn, error) {
	query := `
		SELECT return_id, date, reason, created_at, last_updated_at
		FROM sales_returns
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales returns: %w", err)
	}
	defer rows.Close()

	rets := []domain.SalesReturn{}
	for rows.Next() {
		var ret domain.SalesReturn
		var reason sql.NullString
		if err := rows.Scan(&ret.ReturnID, &ret.Date, &reason, &ret.CreatedAt, &ret.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sales return row: %w", err)
		}
		if reason.Valid {
			ret.Reason = reason.String
		}
		rets = append(rets, ret)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales return rows: %w", err)
	}

	itemQuery := `
		SELECT item_id, return_id, product_id, quantity, return_price
		FROM sales_return_items
		WHERE return_id = $1;
	`
	for i := range rets {
		items, err := r.listSalesReturnItems(ctx, itemQuery, rets[i].ReturnID)
		if err != nil {
			return nil, err
		}
		rets[i].Items = items
	}
	return rets, nil
}

func (r *PgxReturnRepository) listSalesReturnItems(ctx context.Context, query, returnID string) ([]domain.SalesReturnItem, error) {
	rows, err := r.Pool.Query(ctx, query, returnID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for sales return %s: %w", returnID, err)
	}
	defer rows.Close()

	items := []domain.SalesReturnItem{}
	for rows.Next() {
		var it domain.SalesReturnItem
		if err := rows.Scan(&it.ItemID, &it.ReturnID, &it.ProductID, &it.Quantity, &it.ReturnPrice); err != nil {
			return nil, fmt.Errorf("failed to scan sales return item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales return item rows: %w", err)
	}
	return items, nil
}

// SavePurchaseReturn inserts the return with all its items and reduces
// product stock, all within one database transaction.
func (r *PgxReturnRepository) SavePurchaseReturn(ctx context.Context, ret domain.PurchaseReturn) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	retQuery := `
		INSERT INTO purchase_returns (return_id, date, reason, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	var reason sql.NullString
	if ret.Reason != "" {
		reason = sql.NullString{String: ret.Reason, Valid: true}
	}
	_, err = tx.Exec(ctx, retQuery, ret.ReturnID, ret.Date, reason, ret.CreatedAt, ret.LastUpdatedAt)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("purchase return %s", ret.ReturnID))
	}

	itemQuery := `
		INSERT INTO purchase_return_items (item_id, return_id, product_id, quantity, return_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	stockQuery := `
		UPDATE products SET stock = stock - $2, last_updated_at = $3 WHERE product_id = $1;
	`
	batch := &pgx.Batch{}
	for _, it := range ret.Items {
		batch.Queue(itemQuery, it.ItemID, it.ReturnID, it.ProductID, it.Quantity, it.ReturnPrice)
		batch.Queue(stockQuery, it.ProductID, it.Quantity, ret.LastUpdatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapConstraintError(err, fmt.Sprintf("items for purchase return %s", ret.ReturnID))
	}

	return r.Commit(ctx, tx)
}

// ListPurchaseReturns retrieves all purchase returns with their items, newest first.
func (r *PgxReturnRepository) ListPurchaseReturns(ctx context.Context) ([]domain.PurchaseReturn, error) {
	query := `
		SELECT return_id, date, reason, created_at, last_updated_at
		FROM purchase_returns
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase returns: %w", err)
	}
	defer rows.Close()

	rets := []domain.PurchaseReturn{}
	for rows.Next() {
		var ret domain.PurchaseReturn
		var reason sql.NullString
		if err := rows.Scan(&ret.ReturnID, &ret.Date, &reason, &ret.CreatedAt, &ret.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase return row: %w", err)
		}
		if reason.Valid {
			ret.Reason = reason.String
		}
		rets = append(rets, ret)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase return rows: %w", err)
	}

	itemQuery := `
		SELECT item_id, return_id, product_id, quantity, return_price
		FROM purchase_return_items
		WHERE return_id = $1;
	`
	for i := range rets {
		itemRows, err := r.Pool.Query(ctx, itemQuery, rets[i].ReturnID)
		if err != nil {
			return nil, fmt.Errorf("failed to query items for purchase return %s: %w", rets[i].ReturnID, err)
		}
		items := []domain.PurchaseReturnItem{}
		for itemRows.Next() {
			var it domain.PurchaseReturnItem
			if err := itemRows.Scan(&it.ItemID, &it.ReturnID, &it.ProductID, &it.Quantity, &it.ReturnPrice); err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("failed to scan purchase return item row: %w", err)
			}
			items = append(items, it)
		}
		err = itemRows.Err()
		itemRows.Close()
		if err != nil {
			return nil, fmt.Errorf("error iterating purchase return item rows: %w", err)
		}
		rets[i].Items = items
	}
	return rets, nil
}
