package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a journal entry is a Credit or a Debit.
type EntryType string

const (
	Credit EntryType = "Credit"
	Debit  EntryType = "Debit"
)

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	return t == Credit || t == Debit
}

// Transaction is the bookkeeping parent of one or more journal entries.
// Deleting a transaction cascades to its entries.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Date          time.Time       `json:"date"`
	Type          string          `json:"type"`                  // e.g. "Payment", "Journal"
	ReferenceID   string          `json:"referenceID,omitempty"` // Optional external reference
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AuditFields
}

// JournalEntry represents one side of a bookkeeping movement against a
// ledger account. The system does not enforce that entries for a given
// transaction sum to zero.
type JournalEntry struct {
	EntryID       string          `json:"entryID"`       // Primary Key (UUID)
	TransactionID string          `json:"transactionID"` // FK -> transactions, CASCADE
	LedgerID      string          `json:"ledgerID"`      // FK -> ledger_accounts, RESTRICT
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          EntryType       `json:"type"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// LedgerLine is a journal entry joined with the name of the ledger account it
// posts against, as returned by the ledger query.
type LedgerLine struct {
	JournalEntry
	LedgerName string `json:"ledgerName"`
}

// LedgerFilter narrows the ledger query. Zero values mean "no filter";
// DateFrom/DateTo bound the entry creation timestamp inclusively.
type LedgerFilter struct {
	LedgerID string
	DateFrom *time.Time
	DateTo   *time.Time
	Type     EntryType
}
