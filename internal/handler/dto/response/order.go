package response

import (
	"time"

	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"productId"`
	VariationID *uuid.UUID      `json:"variationId,omitempty"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerName  string              `json:"customerName"`
	CustomerEmail string              `json:"customerEmail"`
	PostalCode    string              `json:"postalCode"`
	Street        string              `json:"street"`
	Number        string              `json:"number"`
	Complement    *string             `json:"complement,omitempty"`
	District      string              `json:"district"`
	City          string              `json:"city"`
	State         string              `json:"state"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	Shipping      decimal.Decimal     `json:"shipping"`
	CouponCode    *string             `json:"couponCode,omitempty"`
	Discount      decimal.Decimal     `json:"discount"`
	Total         decimal.Decimal     `json:"total"`
	Status        string              `json:"status"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type OrderListResponse struct {
	ID           uuid.UUID       `json:"id"`
	CustomerName string          `json:"customerName"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type CheckoutResponse struct {
	OrderID uuid.UUID `json:"orderId"`
}

func FromOrderView(rm *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOrderListItem(rm *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:           rm.ID,
		CustomerName: rm.CustomerName,
		Total:        rm.Total,
		Status:       rm.Status,
		CreatedAt:    rm.CreatedAt,
	}
}
