package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
// The literal string values are significant: the balance sheet buckets
// accounts by exact, case-sensitive match on these strings.
type AccountType string

const (
	Asset     AccountType = "Asset"
	Liability AccountType = "Liability"
	Equity    AccountType = "Equity"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity:
		return true
	}
	return false
}

// Account represents a financial account in the chart of accounts.
// Name and Code are each globally unique.
type Account struct {
	AccountID string          `json:"accountID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Code      int             `json:"code"`    // Unique numeric account code
	Balance   decimal.Decimal `json:"balance"` // Stored balance; not maintained by journal postings
	AuditFields
}

// AccountGroup is a classification bucket for ledger accounts, typed by a
// numeric account type code (mapped to a human label outside this service).
// (Name, AccountType) is unique; Code is unique.
type AccountGroup struct {
	GroupID     string `json:"groupID"` // Primary Key (UUID)
	Name        string `json:"name"`
	AccountType int    `json:"accountType"`
	Code        string `json:"code"` // Derived: "{accountType}-{2-digit sequence}"
	AuditFields
}

// AccountGroupCode formats the unique code for the seq-th group of a type.
// e.g. the second group of type 1 gets "1-02".
func AccountGroupCode(accountType, seq int) string {
	return fmt.Sprintf("%d-%02d", accountType, seq)
}

// LedgerAccount is a named posting target (e.g. "Office Rent") under an
// account group. (Name, GroupID) is unique; Code is unique. The group cannot
// be deleted while ledger accounts reference it.
type LedgerAccount struct {
	LedgerID string `json:"ledgerID"` // Primary Key (UUID)
	Name     string `json:"name"`
	GroupID  string `json:"groupID"` // FK -> account_groups, RESTRICT
	Code     string `json:"code"`
	AuditFields
}
