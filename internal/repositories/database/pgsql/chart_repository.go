package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shopledger/internal/apperrors"
	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
)

// PgxChartRepository persists account groups and ledger accounts.
type PgxChartRepository struct {
	BaseRepository
}

// NewChartRepository creates a new repository for chart-of-accounts data.
func NewChartRepository(pool *pgxpool.Pool) portsrepo.ChartRepository {
	return &PgxChartRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChartRepository = (*PgxChartRepository)(nil)

// SaveAccountGroup claims the next sequence number for the group's account
// type and inserts the group, both inside one database transaction. The
// counter upsert takes a row lock, so concurrent creations for the same type
// serialize and can never produce duplicate codes.
func (r *PgxChartRepository) SaveAccountGroup(ctx context.Context, name string, accountType int, now time.Time) (*domain.AccountGroup, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var seq int
	seqQuery := `
		INSERT INTO account_group_sequences (account_type, last_seq)
		VALUES ($1, 1)
		ON CONFLICT (account_type)
		DO UPDATE SET last_seq = account_group_sequences.last_seq + 1
		RETURNING last_seq;
	`
	if err := tx.QueryRow(ctx, seqQuery, accountType).Scan(&seq); err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to advance sequence for account type %d", accountType), err)
	}

	group := domain.AccountGroup{
		GroupID:     uuid.NewString(),
		Name:        name,
		AccountType: accountType,
		Code:        domain.AccountGroupCode(accountType, seq),
		AuditFields: domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}

	insertQuery := `
		INSERT INTO account_groups (group_id, name, account_type, code, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, insertQuery,
		group.GroupID,
		group.Name,
		group.AccountType,
		group.Code,
		group.CreatedAt,
		group.LastUpdatedAt,
	)
	if err != nil {
		return nil, mapConstraintError(err, fmt.Sprintf("account group %q (type %d)", name, accountType))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &group, nil
}

// ListAccountGroups retrieves all account groups ordered by code.
func (r *PgxChartRepository) ListAccountGroups(ctx context.Context) ([]domain.AccountGroup, error) {
	query := `
		SELECT group_id, name, account_type, code, created_at, last_updated_at
		FROM account_groups
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query account groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.AccountGroup{}
	for rows.Next() {
		var g domain.AccountGroup
		if err := rows.Scan(
			&g.GroupID,
			&g.Name,
			&g.AccountType,
			&g.Code,
			&g.CreatedAt,
			&g.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account group row: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account group rows: %w", err)
	}
	return groups, nil
}

// SaveLedgerAccount inserts a new ledger account. A missing group surfaces as
// apperrors.ErrRestricted via the FK; code/name collisions as ErrDuplicate.
func (r *PgxChartRepository) SaveLedgerAccount(ctx context.Context, ledger domain.LedgerAccount) error {
	query := `
		INSERT INTO ledger_accounts (ledger_id, name, group_id, code, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		ledger.LedgerID,
		ledger.Name,
		ledger.GroupID,
		ledger.Code,
		ledger.CreatedAt,
		ledger.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("ledger account %q", ledger.Name))
	}
	return nil
}

// FindLedgerAccountByID retrieves a ledger account by its ID.
func (r *PgxChartRepository) FindLedgerAccountByID(ctx context.Context, ledgerID string) (*domain.LedgerAccount, error) {
	query := `
		SELECT ledger_id, name, group_id, code, created_at, last_updated_at
		FROM ledger_accounts
		WHERE ledger_id = $1;
	`
	var l domain.LedgerAccount
	err := r.Pool.QueryRow(ctx, query, ledgerID).Scan(
		&l.LedgerID,
		&l.Name,
		&l.GroupID,
		&l.Code,
		&l.CreatedAt,
		&l.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger account by ID %s: %w", ledgerID, err)
	}
	return &l, nil
}

// ListLedgerAccounts retrieves all ledger accounts ordered by code.
func (r *PgxChartRepository) ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error) {
	query := `
		SELECT ledger_id, name, group_id, code, created_at, last_updated_at
		FROM ledger_accounts
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger accounts: %w", err)
	}
	defer rows.Close()

	ledgers := []domain.LedgerAccount{}
	for rows.Next() {
		var l domain.LedgerAccount
		if err := rows.Scan(
			&l.LedgerID,
			&l.Name,
			&l.GroupID,
			&l.Code,
			&l.CreatedAt,
			&l.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger account row: %w", err)
		}
		ledgers = append(ledgers, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger account rows: %w", err)
	}
	return ledgers, nil
}

// DeleteLedgerAccount removes a ledger account. Journal entries, payments or
// expenses referencing it turn the delete into apperrors.ErrRestricted.
func (r *PgxChartRepository) DeleteLedgerAccount(ctx context.Context, ledgerID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM ledger_accounts WHERE ledger_id = $1;`, ledgerID)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("ledger account %s", ledgerID))
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
