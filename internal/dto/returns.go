package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shopledger/internal/core/domain"
)

// ReturnItemRequest is one line of a return being recorded.
type ReturnItemRequest struct {
	ProductID   string          `json:"productID" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,gte=1"`
	ReturnPrice decimal.Decimal `json:"returnPrice"`
}

// CreateReturnRequest defines the data needed to record a sales or purchase return.
type CreateReturnRequest struct {
	Date   time.Time           `json:"date" binding:"required"`
	Reason string              `json:"reason"`
	Items  []ReturnItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ReturnItemResponse is one line of a return as returned to callers.
type ReturnItemResponse struct {
	ItemID      string          `json:"itemID"`
	ProductID   string          `json:"productID"`
	Quantity    int             `json:"quantity"`
	ReturnPrice decimal.Decimal `json:"returnPrice"`
}

// ReturnResponse defines the data returned for a sales or purchase return.
type ReturnResponse struct {
	ReturnID string               `json:"returnID"`
	Date     time.Time            `json:"date"`
	Reason   string               `json:"reason,omitempty"`
	Items    []ReturnItemResponse `json:"items"`
}

// ToSalesReturnResponse converts a domain.SalesReturn to its response DTO.
func ToSalesReturnResponse(r *domain.SalesReturn) ReturnResponse {
	items := make([]ReturnItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = ReturnItemResponse{
			ItemID:      it.ItemID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			ReturnPrice: it.ReturnPrice,
		}
	}
	return ReturnResponse{ReturnID: r.ReturnID, Date: r.Date, Reason: r.Reason, Items: items}
}

// ToSalesReturnResponses converts a slice of domain.SalesReturn to DTOs.
func ToSalesReturnResponses(rets []domain.SalesReturn) []ReturnResponse {
	res := make([]ReturnResponse, len(rets))
	for i := range rets {
		res[i] = ToSalesReturnResponse(&rets[i])
	}
	return res
}

// ToPurchaseReturnResponse converts a domain.PurchaseReturn to its response DTO.
func ToPurchaseReturnResponse(r *domain.PurchaseReturn) ReturnResponse {
	items := make([]ReturnItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = ReturnItemResponse{
			ItemID:      it.ItemID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			ReturnPrice: it.ReturnPrice,
		}
	}
	return ReturnResponse{ReturnID: r.ReturnID, Date: r.Date, Reason: r.Reason, Items: items}
}

// ToPurchaseReturnResponses converts a slice of domain.PurchaseReturn to DTOs.
func ToPurchaseReturnResponses(rets []domain.PurchaseReturn) []ReturnResponse {
	res := make([]ReturnResponse, len(rets))
	for i := range rets {
		res[i] = ToPurchaseReturnResponse(&rets[i])
	}
	return res
}
