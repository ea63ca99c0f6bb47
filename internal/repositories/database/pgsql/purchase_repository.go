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

// PgxPurchaseRepository persists purchase documents in Postgres.
type PgxPurchaseRepository struct {
	BaseRepository
}

// NewPurchaseRepository creates a new repository for purchase data.
func NewPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepository {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepository = (*PgxPurchaseRepository)(nil)

// SavePurchase inserts the purchase with all its items and increments product
// stock, all within one database transaction.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	purchaseQuery := `
		INSERT INTO purchases (purchase_id, date, supplier_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	var supplierID sql.NullString
	if purchase.SupplierID != "" {
		supplierID = sql.NullString{String: purchase.SupplierID, Valid: true}
	}
	_, err = tx.Exec(ctx, purchaseQuery, purchase.PurchaseID, purchase.Date, supplierID, purchase.CreatedAt, purchase.LastUpdatedAt)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("purchase %s", purchase.PurchaseID))
	}

	itemQuery := `
		INSERT INTO purchase_items (item_id, purchase_id, product_id, quantity, purchase_price)
		VALUES ($1, $2, $3, $4, $5);
	`
	stockQuery := `
		UPDATE products SET stock = stock + $2, last_updated_at = $3 WHERE product_id = $1;
	`
	batch := &pgx.Batch{}
	for _, it := range purchase.Items {
		batch.Queue(itemQuery, it.ItemID, it.PurchaseID, it.ProductID, it.Quantity, it.PurchasePrice)
		batch.Queue(stockQuery, it.ProductID, it.Quantity, purchase.LastUpdatedAt)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapConstraintError(err, fmt.Sprintf("items for purchase %s", purchase.PurchaseID))
	}

	return r.Commit(ctx, tx)
}

// ListPurchases retrieves all purchases with their items, newest first.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.Purchase, error) {
	query := `
		SELECT purchase_id, date, supplier_id, created_at, last_updated_at
		FROM purchases
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.Purchase{}
	for rows.Next() {
		var p domain.Purchase
		var supplierID sql.NullString
		if err := rows.Scan(&p.PurchaseID, &p.Date, &supplierID, &p.CreatedAt, &p.LastUpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		if supplierID.Valid {
			p.SupplierID = supplierID.String
		}
		purchases = append(purchases, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}

	itemQuery := `
		SELECT item_id, purchase_id, product_id, quantity, purchase_price
		FROM purchase_items
		WHERE purchase_id = $1;
	`
	for i := range purchases {
		itemRows, err := r.Pool.Query(ctx, itemQuery, purchases[i].PurchaseID)
		if err != nil {
			return nil, fmt.Errorf("failed to query items for purchase %s: %w", purchases[i].PurchaseID, err)
		}
		items := []domain.PurchaseItem{}
		for itemRows.Next() {
			var it domain.PurchaseItem
			if err := itemRows.Scan(&it.ItemID, &it.PurchaseID, &it.ProductID, &it.Quantity, &it.PurchasePrice); err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("failed to scan purchase item row: %w", err)
			}
			items = append(items, it)
		}
		err = itemRows.Err()
		itemRows.Close()
		if err != nil {
			return nil, fmt.Errorf("error iterating purchase item rows: %w", err)
		}
		purchases[i].Items = items
	}
	return purchases, nil
}
