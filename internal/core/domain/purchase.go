package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is a purchase document owning its line items.
type Purchase struct {
	PurchaseID string         `json:"purchaseID"` // Primary Key (UUID)
	Date       time.Time      `json:"date"`
	SupplierID string         `json:"supplierID,omitempty"` // Optional FK -> suppliers, RESTRICT
	Items      []PurchaseItem `json:"items,omitempty"`
	AuditFields
}

// PurchaseItem is one purchased product line.
type PurchaseItem struct {
	ItemID        string          `json:"itemID"`     // Primary Key (UUID)
	PurchaseID    string          `json:"purchaseID"` // FK -> purchases, CASCADE
	ProductID     string          `json:"productID"`  // FK -> products, RESTRICT
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"` // Unit cost price
}

// ProductEvent is one purchase or sale line of a product, used for the
// chronological product transaction history.
type ProductEvent struct {
	Type      string          `json:"type"` // "Purchase" or "Sale"
	Quantity  int             `json:"quantity"`
	Date      time.Time       `json:"date"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}
