package response

import (
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppliedCouponResponse struct {
	Code     string          `json:"code"`
	Kind     string          `json:"kind"`
	Value    decimal.Decimal `json:"value"`
	Discount decimal.Decimal `json:"discount"`
}

func FromAppliedCoupon(a *coupon.Applied) *AppliedCouponResponse {
	return &AppliedCouponResponse{
		Code:     a.Code,
		Kind:     a.Kind.String(),
		Value:    a.Value,
		Discount: a.Discount,
	}
}

type CouponResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Kind        string          `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	MinSubtotal decimal.Decimal `json:"minSubtotal"`
	ExpiresAt   *time.Time      `json:"expiresAt,omitempty"`
	MaxUses     *int32          `json:"maxUses,omitempty"`
	CurrentUses int32           `json:"currentUses"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func FromCouponListItem(rm *queries.CouponListItem) *CouponResponse {
	return &CouponResponse{
		ID:          rm.ID,
		Code:        rm.Code,
		Kind:        rm.Kind,
		Value:       rm.Value,
		MinSubtotal: rm.MinSubtotal,
		ExpiresAt:   rm.ExpiresAt,
		MaxUses:     rm.MaxUses,
		CurrentUses: rm.CurrentUses,
		Active:      rm.Active,
		CreatedAt:   rm.CreatedAt,
	}
}
