package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// JournalEntryRequest is one entry of a transaction being posted.
type JournalEntryRequest struct {
	LedgerID    string          `json:"ledgerID" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,entrytype"`
}

// CreateTransactionRequest defines the data needed to post a bookkeeping
// transaction with its journal entries.
type CreateTransactionRequest struct {
	Date        time.Time             `json:"date" binding:"required"`
	Type        string                `json:"type" binding:"required"`
	ReferenceID string                `json:"referenceID"`
	TotalAmount decimal.Decimal       `json:"totalAmount"`
	Entries     []JournalEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// JournalEntryResponse is one journal entry as returned to callers.
type JournalEntryResponse struct {
	EntryID       string          `json:"entryID"`
	TransactionID string          `json:"transactionID"`
	LedgerID      string          `json:"ledgerID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Date          time.Time       `json:"date"`
	Type          string          `json:"type"`
	ReferenceID   string          `json:"referenceID,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// GetTransactionResponse is a transaction combined with its entries.
type GetTransactionResponse struct {
	Transaction TransactionResponse    `json:"transaction"`
	Entries     []JournalEntryResponse `json:"entries"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to its response DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		EntryID:       e.EntryID,
		TransactionID: e.TransactionID,
		LedgerID:      e.LedgerID,
		Description:   e.Description,
		Amount:        e.Amount,
		Type:          string(e.Type),
		CreatedAt:     e.CreatedAt,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to DTOs.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	res := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToJournalEntryResponse(&entries[i])
	}
	return res
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Type:          t.Type,
		ReferenceID:   t.ReferenceID,
		TotalAmount:   t.TotalAmount,
	}
}

// LedgerQueryParams are the optional filters of the ledger query. Dates use
// the 2006-01-02 layout and bound the entry creation timestamp inclusively.
type LedgerQueryParams struct {
	AccountID string `form:"accountId"`
	DateFrom  string `form:"dateFrom"`
	DateTo    string `form:"dateTo"`
	Type      string `form:"type"`
}

// LedgerLineResponse is one ledger query result row.
type LedgerLineResponse struct {
	JournalEntryResponse
	LedgerName string `json:"ledgerName"`
}

// ToLedgerLineResponses converts domain ledger lines to DTOs.
func ToLedgerLineResponses(lines []domain.LedgerLine) []LedgerLineResponse {
	res := make([]LedgerLineResponse, len(lines))
	for i := range lines {
		res[i] = LedgerLineResponse{
			JournalEntryResponse: ToJournalEntryResponse(&lines[i].JournalEntry),
			LedgerName:           lines[i].LedgerName,
		}
	}
	return res
}
