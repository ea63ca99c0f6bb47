package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// CreatePaymentRequest defines the data needed to record a payment. The
// ledgerID names the ledger account the synthesized Credit entry posts to.
type CreatePaymentRequest struct {
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method" binding:"required,paymentmethod"`
	ReferenceID string          `json:"referenceID"`
	AccountID   string          `json:"accountID" binding:"required"`
	LedgerID    string          `json:"ledgerID" binding:"required"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	ReferenceID string          `json:"referenceID,omitempty"`
	AccountID   string          `json:"accountID"`
	LedgerID    string          `json:"ledgerID"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		Date:        p.Date,
		Amount:      p.Amount,
		Method:      string(p.Method),
		ReferenceID: p.ReferenceID,
		AccountID:   p.AccountID,
		LedgerID:    p.LedgerID,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to DTOs.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	LedgerID    string          `json:"ledgerID" binding:"required"`
	Date        time.Time       `json:"date" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID   string          `json:"expenseID"`
	LedgerID    string          `json:"ledgerID"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:   e.ExpenseID,
		LedgerID:    e.LedgerID,
		Date:        e.Date,
		Amount:      e.Amount,
		Description: e.Description,
	}
}

// ToExpenseResponses converts a slice of domain.Expense to DTOs.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}
