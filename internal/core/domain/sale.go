package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a sales document owning its line items; items cascade with the
// parent and have no independent lifecycle.
type Sale struct {
	SaleID       string      `json:"saleID"` // Primary Key (UUID)
	Date         time.Time   `json:"date"`
	CustomerName string      `json:"customerName,omitempty"`
	Items        []SalesItem `json:"items,omitempty"`
	AuditFields
}

// SalesItem is one sold product line. Quantity must be at least 1 and Price
// non-negative; the referenced product is restrict-deleted.
type SalesItem struct {
	ItemID    string          `json:"itemID"`    // Primary Key (UUID)
	SaleID    string          `json:"saleID"`    // FK -> sales, CASCADE
	ProductID string          `json:"productID"` // FK -> products, RESTRICT
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"` // Unit selling price
}

// LastSalePrice is the result of the last-sale-price lookup. A product with
// no sales yields the sentinel {SellingPrice: 0, Date: nil}.
type LastSalePrice struct {
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Date         *time.Time      `json:"date"`
}
