package pgsql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shopledger/internal/core/domain"
	portsrepo "github.com/shopledger/shopledger/internal/core/ports/repositories"
)

// PgxExpenseRepository persists expenses.
type PgxExpenseRepository struct {
	BaseRepository
}

// NewExpenseRepository creates a new repository for expense data.
func NewExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepository = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense row.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, ledger_id, date, amount, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	var desc sql.NullString
	if expense.Description != "" {
		desc = sql.NullString{String: expense.Description, Valid: true}
	}
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID,
		expense.LedgerID,
		expense.Date,
		expense.Amount,
		desc,
		expense.CreatedAt,
		expense.LastUpdatedAt,
	)
	if err != nil {
		return mapConstraintError(err, fmt.Sprintf("expense %s", expense.ExpenseID))
	}
	return nil
}

// ListExpenses retrieves all expenses, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, ledger_id, date, amount, description, created_at, last_updated_at
		FROM expenses
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var e domain.Expense
		var desc sql.NullString
		if err := rows.Scan(
			&e.ExpenseID,
			&e.LedgerID,
			&e.Date,
			&e.Amount,
			&desc,
			&e.CreatedAt,
			&e.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		if desc.Valid {
			e.Description = desc.String
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}
