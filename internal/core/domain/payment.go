package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod enumerates the accepted payment channels.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "Cash"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
	MethodCard         PaymentMethod = "Card"
	MethodCheque       PaymentMethod = "Cheque"
)

// IsValid reports whether m is one of the known payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCard, MethodCheque:
		return true
	}
	return false
}

// Payment records money received against an account. Creating a payment also
// posts exactly one Credit journal entry against a ledger account; the two
// writes succeed or fail together.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Method      PaymentMethod   `json:"method"`
	ReferenceID string          `json:"referenceID,omitempty"`
	AccountID   string          `json:"accountID"` // FK -> accounts, CASCADE
	LedgerID    string          `json:"ledgerID"`  // FK -> ledger_accounts, RESTRICT
	AuditFields
}

// PaymentDescription builds the journal entry description for a payment.
func PaymentDescription(amount decimal.Decimal, method PaymentMethod) string {
	return fmt.Sprintf("Payment of %s via %s", amount.String(), method)
}

// Expense records operating spend posted against a ledger account.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary Key (UUID)
	LedgerID    string          `json:"ledgerID"`  // FK -> ledger_accounts, RESTRICT
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	AuditFields
}
