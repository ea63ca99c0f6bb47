package dto

import (
	"github.com/shopledger/shopledger/internal/core/domain"
)

// CreateAccountGroupRequest defines the data needed to create an account group.
// The code is derived server-side from the per-type sequence.
type CreateAccountGroupRequest struct {
	Name        string `json:"name" binding:"required"`
	AccountType int    `json:"accountType" binding:"required,gt=0"`
}

// AccountGroupResponse defines the data returned for an account group.
type AccountGroupResponse struct {
	GroupID     string `json:"groupID"`
	Name        string `json:"name"`
	AccountType int    `json:"accountType"`
	Code        string `json:"code"`
}

// ToAccountGroupResponse converts a domain.AccountGroup to its response DTO.
func ToAccountGroupResponse(g *domain.AccountGroup) AccountGroupResponse {
	return AccountGroupResponse{
		GroupID:     g.GroupID,
		Name:        g.Name,
		AccountType: g.AccountType,
		Code:        g.Code,
	}
}

// ToAccountGroupResponses converts a slice of domain.AccountGroup to DTOs.
func ToAccountGroupResponses(groups []domain.AccountGroup) []AccountGroupResponse {
	res := make([]AccountGroupResponse, len(groups))
	for i := range groups {
		res[i] = ToAccountGroupResponse(&groups[i])
	}
	return res
}

// CreateLedgerAccountRequest defines the data needed to create a ledger account.
type CreateLedgerAccountRequest struct {
	Name    string `json:"name" binding:"required"`
	GroupID string `json:"groupID" binding:"required"`
	Code    string `json:"code" binding:"required"`
}

// LedgerAccountResponse defines the data returned for a ledger account.
type LedgerAccountResponse struct {
	LedgerID string `json:"ledgerID"`
	Name     string `json:"name"`
	GroupID  string `json:"groupID"`
	Code     string `json:"code"`
}

// ToLedgerAccountResponse converts a domain.LedgerAccount to its response DTO.
func ToLedgerAccountResponse(l *domain.LedgerAccount) LedgerAccountResponse {
	return LedgerAccountResponse{
		LedgerID: l.LedgerID,
		Name:     l.Name,
		GroupID:  l.GroupID,
		Code:     l.Code,
	}
}

// ToLedgerAccountResponses converts a slice of domain.LedgerAccount to DTOs.
func ToLedgerAccountResponses(ledgers []domain.LedgerAccount) []LedgerAccountResponse {
	res := make([]LedgerAccountResponse, len(ledgers))
	for i := range ledgers {
		res[i] = ToLedgerAccountResponse(&ledgers[i])
	}
	return res
}
