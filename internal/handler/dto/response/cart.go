package response

import (
	"storefront/internal/domain/order"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	LineID      string          `json:"lineId"`
	ProductID   uuid.UUID       `json:"productId"`
	VariationID *uuid.UUID      `json:"variationId,omitempty"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Lines      []CartLineResponse `json:"lines"`
	CouponCode *string            `json:"couponCode,omitempty"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
	Discount   decimal.Decimal    `json:"discount"`
	Shipping   decimal.Decimal    `json:"shipping"`
	Total      decimal.Decimal    `json:"total"`
	Address    *AddressResponse   `json:"address,omitempty"`
	Adjusted   bool               `json:"adjusted,omitempty"`
}

type AddressResponse struct {
	PostalCode string `json:"postalCode"`
	Street     string `json:"street"`
	Number     string `json:"number,omitempty"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
}

func FromAddress(a *order.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		PostalCode: a.PostalCode,
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
	}
}

func FromCartView(rm *queries.CartView, adjusted bool) *CartResponse {
	lines := make([]CartLineResponse, len(rm.Lines))
	for i, l := range rm.Lines {
		lines[i] = CartLineResponse{
			LineID:      l.LineID,
			ProductID:   l.ProductID,
			VariationID: l.VariationID,
			Name:        l.Name,
			UnitPrice:   l.UnitPrice,
			Quantity:    l.Quantity,
			Subtotal:    l.Subtotal,
		}
	}
	return &CartResponse{
		Lines:      lines,
		CouponCode: rm.CouponCode,
		Subtotal:   rm.Subtotal,
		Discount:   rm.Discount,
		Shipping:   rm.Shipping,
		Total:      rm.Total,
		Address:    FromAddress(rm.Address),
		Adjusted:   adjusted,
	}
}
