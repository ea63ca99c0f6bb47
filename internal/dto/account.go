package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name    string           `json:"name" binding:"required"`
	Type    string           `json:"type" binding:"required,accounttype"`
	Code    int              `json:"code" binding:"required,gt=0"`
	Balance *decimal.Decimal `json:"balance"` // Optional opening balance, defaults to 0
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish omitted fields from zero values.
type UpdateAccountRequest struct {
	Name    *string          `json:"name"`
	Balance *decimal.Decimal `json:"balance"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Code      int             `json:"code"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID: acc.AccountID,
		Name:      acc.Name,
		Type:      string(acc.Type),
		Code:      acc.Code,
		Balance:   acc.Balance,
		CreatedAt: acc.CreatedAt,
	}
}

// ToAccountResponses converts a slice of domain.Account to response DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
