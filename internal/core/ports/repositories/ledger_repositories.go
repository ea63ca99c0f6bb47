package repositories

import (
	"context"
	"time"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// AccountRepository persists the chart-of-accounts Account entity.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, accountID string) error
}

// ChartRepository persists account groups and ledger accounts.
type ChartRepository interface {
	// SaveAccountGroup assigns the next per-type sequence code atomically and
	// inserts the group in the same database transaction. The returned group
	// carries the derived code.
	SaveAccountGroup(ctx context.Context, name string, accountType int, now time.Time) (*domain.AccountGroup, error)
	ListAccountGroups(ctx context.Context) ([]domain.AccountGroup, error)
	SaveLedgerAccount(ctx context.Context, ledger domain.LedgerAccount) error
	FindLedgerAccountByID(ctx context.Context, ledgerID string) (*domain.LedgerAccount, error)
	ListLedgerAccounts(ctx context.Context) ([]domain.LedgerAccount, error)
	DeleteLedgerAccount(ctx context.Context, ledgerID string) error
}

// JournalRepository persists bookkeeping transactions and their entries.
type JournalRepository interface {
	// SaveTransaction inserts the transaction and all its entries atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, entries []domain.JournalEntry) error
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, []domain.JournalEntry, error)
	// ListEntries returns entries matching the filter joined with their ledger
	// account name, ordered by creation time ascending.
	ListEntries(ctx context.Context, filter domain.LedgerFilter) ([]domain.LedgerLine, error)
}

// PaymentRepository persists payments together with their ledger side effect.
type PaymentRepository interface {
	// SavePayment inserts the payment, its parent transaction and the single
	// Credit journal entry in one database transaction; on any failure none
	// of the three rows exist.
	SavePayment(ctx context.Context, payment domain.Payment, txn domain.Transaction, entry domain.JournalEntry) error
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

// ExpenseRepository persists expenses.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
}
