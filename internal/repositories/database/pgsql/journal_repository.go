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

// PgxJournalRepository persists bookkeeping transactions and journal entries.
type PgxJournalRepository struct {
	BaseRepository
}

// NewJournalRepository creates a new repository for transaction and journal entry data.
func NewJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// SaveTransaction inserts the transaction and all its journal entries within
// one database transaction; a failure on any entry rolls back everything.
func (r *PgxJournalRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	txnQuery := `
		INSERT INTO transactions (transaction_id, date, type, reference_id, total_amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	var refID sql.NullString
	if txn.ReferenceID != "" {
		refID = sql.NullString{String: txn.ReferenceID, Valid: true}
	}
	_, err = tx.Exec(ctx, txnQuery,
		txn.TransactionID,
		txn.Date,
		txn.Type,
		refID,
		txn.TotalAmount,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("transaction %s", txn.TransactionID))
	}

	entryQuery := `
		INSERT INTO journal_entries (entry_id, transaction_id, ledger_id, description, amount, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(entryQuery,
			e.EntryID,
			e.TransactionID,
			e.LedgerID,
			e.Description,
			e.Amount,
			e.Type,
			e.CreatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return mapConstraintError(err, fmt.Sprintf("journal entries for transaction %s", txn.TransactionID))
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction and its entries.
func (r *PgxJournalRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, []domain.JournalEntry, error) {
	txnQuery := `
		SELECT transaction_id, date, type, reference_id, total_amount, created_at, last_updated_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var txn domain.Transaction
	var refID sql.NullString
	err := r.Pool.QueryRow(ctx, txnQuery, transactionID).Scan(
		&txn.TransactionID,
		&txn.Date,
		&txn.Type,
		&refID,
		&txn.TotalAmount,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	if refID.Valid {
		txn.ReferenceID = refID.String
	}

	entryQuery := `
		SELECT entry_id, transaction_id, ledger_id, description, amount, type, created_at
		FROM journal_entries
		WHERE transaction_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, entryQuery, transactionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query entries for transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var e domain.JournalEntry
		if err := rows.Scan(
			&e.EntryID,
			&e.TransactionID,
			&e.LedgerID,
			&e.Description,
			&e.Amount,
			&e.Type,
			&e.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}
	return &txn, entries, nil
}

// ListEntries returns journal entries matching the filter joined with the
// ledger account name, ordered by creation timestamp ascending. The date
// bounds are inclusive; absent filters match everything. The result is
// unpaginated.
func (r *PgxJournalRepository) ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerLine, error) {
	query := `
		SELECT e.entry_id, e.transaction_id, e.ledger_id, e.description, e.amount, e.type, e.created_at, l.name
		FROM journal_entries e
		JOIN ledger_accounts l ON e.ledger_id = l.ledger_id
		WHERE ($1 = '' OR e.ledger_id = $1)
		  AND ($2::timestamptz IS NULL OR e.created_at >= $2)
		  AND ($3::timestamptz IS NULL OR e.created_at <= $3)
		  AND ($4 = '' OR e.type = $4)
		ORDER BY e.created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query, filter.LedgerID, filter.DateFrom, filter.DateTo, string(filter.Type))
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		if err := rows.Scan(
			&line.EntryID,
			&line.TransactionID,
			&line.LedgerID,
			&line.Description,
			&line.Amount,
			&line.Type,
			&line.CreatedAt,
			&line.LedgerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger lines: %w", err)
	}
	return lines, nil
}
