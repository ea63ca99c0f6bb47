package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// SaleItemRequest is one line of a sale being recorded.
type SaleItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gte=1"`
	Price     decimal.Decimal `json:"price"`
}

// CreateSaleRequest defines the data needed to record a sale with its items.
type CreateSaleRequest struct {
	Date         time.Time         `json:"date" binding:"required"`
	CustomerName string            `json:"customerName"`
	Items        []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemResponse is one line of a sale as returned to callers.
type SaleItemResponse struct {
	ItemID    string          `json:"itemID"`
	ProductID string          `json:"productID"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID       string             `json:"saleID"`
	Date         time.Time          `json:"date"`
	CustomerName string             `json:"customerName,omitempty"`
	Items        []SaleItemResponse `json:"items"`
}

// ToSaleResponse converts a domain.Sale to its response DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, it := range s.Items {
		items[i] = SaleItemResponse{
			ItemID:    it.ItemID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		}
	}
	return SaleResponse{
		SaleID:       s.SaleID,
		Date:         s.Date,
		CustomerName: s.CustomerName,
		Items:        items,
	}
}

// ToSaleResponses converts a slice of domain.Sale to DTOs.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i := range sales {
		res[i] = ToSaleResponse(&sales[i])
	}
	return res
}

// LastSalePriceResponse reports the most recent selling price of a product.
// Date is null when the product has never been sold.
type LastSalePriceResponse struct {
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Date         *time.Time      `json:"date"`
}

// ToLastSalePriceResponse converts a domain.LastSalePrice to its DTO.
func ToLastSalePriceResponse(p *domain.LastSalePrice) LastSalePriceResponse {
	return LastSalePriceResponse{SellingPrice: p.SellingPrice, Date: p.Date}
}
