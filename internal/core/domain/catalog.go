package domain

import "github.com/shopspring/decimal"

// Product is master data referenced by purchase, sale and return items.
// A product with historical transaction lines cannot be deleted.
type Product struct {
	ProductID string          `json:"productID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // Current selling price
	Stock     int             `json:"stock"`
	AuditFields
}

// Category groups products; deleting a category cascades to its sub-categories.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary Key (UUID)
	Name       string `json:"name"`
	AuditFields
}

// SubCategory belongs to exactly one category.
type SubCategory struct {
	SubCategoryID string `json:"subCategoryID"` // Primary Key (UUID)
	CategoryID    string `json:"categoryID"`    // FK -> categories, CASCADE
	Name          string `json:"name"`
	AuditFields
}

// Supplier is master data referenced by purchases.
type Supplier struct {
	SupplierID  string `json:"supplierID"` // Primary Key (UUID)
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address,omitempty"`
	AuditFields
}
