package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
)

// PgxPaymentRepository persists payments and their ledger side effect.
type PgxPaymentRepository struct {
	BaseRepository
}

// NewPaymentRepository creates a new repository for payment data.
func NewPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

// SavePayment inserts the payment, its parent bookkeeping transaction and the
// single Credit journal entry within one database transaction. If any insert
// fails, none of the three rows exist afterwards.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, txn domain.Transaction, entry domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	txnQuery := `
		INSERT INTO transactions (transaction_id, date, type, reference_id, total_amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	var txnRef sql.NullString
	if txn.ReferenceID != "" {
		txnRef = sql.NullString{String: txn.ReferenceID, Valid: true}
	}
	_, err = tx.Exec(ctx, txnQuery,
		txn.TransactionID,
		txn.Date,
		txn.Type,
		txnRef,
		txn.TotalAmount,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("transaction for payment %s", payment.PaymentID))
	}

	entryQuery := `
		INSERT INTO journal_entries (entry_id, transaction_id, ledger_id, description, amount, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.TransactionID,
		entry.LedgerID,
		entry.Description,
		entry.Amount,
		entry.Type,
		entry.CreatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("journal entry for payment %s", payment.PaymentID))
	}

	paymentQuery := `
		INSERT INTO payments (payment_id, date, amount, method, reference_id, account_id, ledger_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	var payRef sql.NullString
	if payment.ReferenceID != "" {
		payRef = sql.NullString{String: payment.ReferenceID, Valid: true}
	}
	_, err = tx.Exec(ctx, paymentQuery,
		payment.PaymentID,
		payment.Date,
		payment.Amount,
		payment.Method,
		payRef,
		payment.AccountID,
		payment.LedgerID,
		payment.CreatedAt,
		payment.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("payment %s", payment.PaymentID))
	}

	return r.Commit(ctx, tx)
}

// ListPayments retrieves all payments, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, date, amount, method, reference_id, account_id, ledger_id, created_at, last_updated_at
		FROM payments
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		var ref sql.NullString
		if err := rows.Scan(
			&p.PaymentID,
			&p.Date,
			&p.Amount,
			&p.Method,
			&ref,
			&p.AccountID,
			&p.LedgerID,
			&p.CreatedAt,
			&p.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		if ref.Valid {
			p.ReferenceID = ref.String
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}
