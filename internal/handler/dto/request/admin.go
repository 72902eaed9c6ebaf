package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCouponRequest struct {
	Code        string          `json:"code" binding:"required"`
	Kind        string          `json:"kind" binding:"required,oneof=fixed percentage"`
	Value       decimal.Decimal `json:"value" binding:"required"`
	MinSubtotal decimal.Decimal `json:"min_subtotal"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
	MaxUses     *int32          `json:"max_uses,omitempty"`
}

type SetCouponActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type CreateVariationRequest struct {
	Name            string          `json:"name" binding:"required"`
	AdditionalPrice decimal.Decimal `json:"additional_price"`
	SKU             *string         `json:"sku,omitempty"`
	Stock           int             `json:"stock" binding:"gte=0"`
}

type CreateProductRequest struct {
	Name        string                   `json:"name" binding:"required"`
	Description string                   `json:"description"`
	BasePrice   decimal.Decimal          `json:"base_price" binding:"required"`
	Stock       int                      `json:"stock" binding:"gte=0"`
	Variations  []CreateVariationRequest `json:"variations,omitempty"`
}

// SetStockRequest uses a pointer quantity so an explicit zero survives binding.
type SetStockRequest struct {
	ProductID   uuid.UUID  `json:"product_id" binding:"required"`
	VariationID *uuid.UUID `json:"variation_id,omitempty"`
	Quantity    *int       `json:"quantity" binding:"required"`
}
