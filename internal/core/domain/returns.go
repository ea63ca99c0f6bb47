package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesReturn records goods returned by a customer. Items cascade with the
// parent; referenced products are restrict-deleted.
type SalesReturn struct {
	ReturnID string            `json:"returnID"` // Primary Key (UUID)
	Date     time.Time         `json:"date"`
	Reason   string            `json:"reason,omitempty"`
	Items    []SalesReturnItem `json:"items,omitempty"`
	AuditFields
}

// SalesReturnItem mirrors SalesItem with a return-specific price.
type SalesReturnItem struct {
	ItemID      string          `json:"itemID"`    // Primary Key (UUID)
	ReturnID    string          `json:"returnID"`  // FK -> sales_returns, CASCADE
	ProductID   string          `json:"productID"` // FK -> products, RESTRICT
	Quantity    int             `json:"quantity"`
	ReturnPrice decimal.Decimal `json:"returnPrice"`
}

// PurchaseReturn records goods sent back to a supplier.
type PurchaseReturn struct {
	ReturnID string               `json:"returnID"` // Primary Key (UUID)
	Date     time.Time            `json:"date"`
	Reason   string               `json:"reason,omitempty"`
	Items    []PurchaseReturnItem `json:"items,omitempty"`
	AuditFields
}

// PurchaseReturnItem mirrors PurchaseItem with a return-specific price.
type PurchaseReturnItem struct {
	ItemID      string          `json:"itemID"`    // Primary Key (UUID)
	ReturnID    string          `json:"returnID"`  // FK -> purchase_returns, CASCADE
	ProductID   string          `json:"productID"` // FK -> products, RESTRICT
	Quantity    int             `json:"quantity"`
	ReturnPrice decimal.Decimal `json:"returnPrice"`
}
