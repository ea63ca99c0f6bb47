package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// PurchaseItemRequest is one line of a purchase being recorded.
type PurchaseItemRequest struct {
	ProductID     string          `json:"productID" binding:"required"`
	Quantity      int             `json:"quantity" binding:"required,gte=1"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// CreatePurchaseRequest defines the data needed to record a purchase.
type CreatePurchaseRequest struct {
	Date       time.Time             `json:"date" binding:"required"`
	SupplierID string                `json:"supplierID"`
	Items      []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PurchaseItemResponse is one line of a purchase as returned to callers.
type PurchaseItemResponse struct {
	ItemID        string          `json:"itemID"`
	ProductID     string          `json:"productID"`
	Quantity      int             `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID string                 `json:"purchaseID"`
	Date       time.Time              `json:"date"`
	SupplierID string                 `json:"supplierID,omitempty"`
	Items      []PurchaseItemResponse `json:"items"`
}

// ToPurchaseResponse converts a domain.Purchase to its response DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(p.Items))
	for i, it := range p.Items {
		items[i] = PurchaseItemResponse{
			ItemID:        it.ItemID,
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			PurchasePrice: it.PurchasePrice,
		}
	}
	return PurchaseResponse{
		PurchaseID: p.PurchaseID,
		Date:       p.Date,
		SupplierID: p.SupplierID,
		Items:      items,
	}
}

// ToPurchaseResponses converts a slice of domain.Purchase to DTOs.
func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	res := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		res[i] = ToPurchaseResponse(&purchases[i])
	}
	return res
}

// ProductEventResponse is one purchase or sale line in a product's history.
type ProductEventResponse struct {
	Type      string          `json:"type"` // "Purchase" or "Sale"
	Quantity  int             `json:"quantity"`
	Date      time.Time       `json:"date"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// ToProductEventResponses converts domain product events to DTOs.
func ToProductEventResponses(events []domain.ProductEvent) []ProductEventResponse {
	res := make([]ProductEventResponse, len(events))
	for i, e := range events {
		res[i] = ProductEventResponse{
			Type:      e.Type,
			Quantity:  e.Quantity,
			Date:      e.Date,
			UnitPrice: e.UnitPrice,
		}
	}
	return res
}
