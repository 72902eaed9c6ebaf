package coupon

import (
	"fmt"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

type Coupon struct {
	id          uuid.UUID
	code        Code
	kind        DiscountKind
	value       decimal.Decimal
	minSubtotal decimal.Decimal
	expiresAt   *time.Time
	maxUses     *int32
	currentUses int32
	active      bool
	createdAt   time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	kind DiscountKind,
	value decimal.Decimal,
	minSubtotal decimal.Decimal,
	expiresAt *time.Time,
	maxUses *int32,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if _, err := NewDiscountKind(kind.String()); err != nil {
		return nil, err
	}
	if !value.IsPositive() {
		return nil, ErrInvalidDiscountValue
	}
	if kind == KindPercentage && value.GreaterThan(oneHundred) {
		return nil, ErrInvalidDiscountPercent
	}
	if minSubtotal.IsNegative() {
		return nil, ErrInvalidDiscountValue
	}

	return &Coupon{
		id:          id,
		code:        couponCode,
		kind:        kind,
		value:       value,
		minSubtotal: minSubtotal,
		expiresAt:   expiresAt,
		maxUses:     maxUses,
		active:      true,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code Code,
	kind DiscountKind,
	value decimal.Decimal,
	minSubtotal decimal.Decimal,
	expiresAt *time.Time,
	maxUses *int32,
	currentUses int32,
	active bool,
	createdAt time.Time,
) *Coupon {
	return &Coupon{
		id:          id,
		code:        code,
		kind:        kind,
		value:       value,
		minSubtotal: minSubtotal,
		expiresAt:   expiresAt,
		maxUses:     maxUses,
		currentUses: currentUses,
		active:      active,
		createdAt:   createdAt,
	}
}

// Validate runs the full redemption chain against the given time and
// cart subtotal, in fixed order: active, expiry, usage limit, minimum.
func (c *Coupon) Validate(now time.Time, subtotal decimal.Decimal) error {
	if !c.active {
		return errs.ErrCouponInactive
	}
	if c.expiresAt != nil && c.expiresAt.Before(now) {
		return errs.ErrCouponExpired
	}
	if c.maxUses != nil && c.currentUses >= *c.maxUses {
		return errs.ErrCouponUsageLimitReached
	}
	if c.minSubtotal.IsPositive() && subtotal.LessThan(c.minSubtotal) {
		return errs.Wrap(errs.ErrCouponBelowMinimum,
			fmt.Sprintf("subtotal %s is below the required minimum of %s",
				subtotal.StringFixed(2), c.minSubtotal.StringFixed(2)))
	}
	return nil
}

// DiscountFor computes the discount this coupon grants against the
// given subtotal: the raw value for fixed coupons, subtotal*value/100
// for percentage ones, clamped to the subtotal and rounded half-up to
// two decimal places.
func (c *Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	return discountFor(c.kind, c.value, subtotal)
}

func (c *Coupon) ID() uuid.UUID                { return c.id }
func (c *Coupon) Code() Code                   { return c.code }
func (c *Coupon) Kind() DiscountKind           { return c.kind }
func (c *Coupon) Value() decimal.Decimal       { return c.value }
func (c *Coupon) MinSubtotal() decimal.Decimal { return c.minSubtotal }
func (c *Coupon) ExpiresAt() *time.Time        { return c.expiresAt }
func (c *Coupon) MaxUses() *int32              { return c.maxUses }
func (c *Coupon) CurrentUses() int32           { return c.currentUses }
func (c *Coupon) IsActive() bool               { return c.active }
func (c *Coupon) CreatedAt() time.Time         { return c.createdAt }

// Applied is the session-scoped record of a redeemed-but-not-finalized
// coupon. The discount is provisional: it is recomputed whenever the
// cart subtotal changes and only becomes final at checkout.
type Applied struct {
	CouponID uuid.UUID       `json:"coupon_id"`
	Code     string          `json:"code"`
	Kind     DiscountKind    `json:"kind"`
	Value    decimal.Decimal `json:"value"`
	Discount decimal.Decimal `json:"discount"`
}

func NewApplied(c *Coupon, subtotal decimal.Decimal) *Applied {
	return &Applied{
		CouponID: c.ID(),
		Code:     c.Code().String(),
		Kind:     c.Kind(),
		Value:    c.Value(),
		Discount: c.DiscountFor(subtotal),
	}
}

// Recompute re-derives the discount against a new subtotal: percentage
// coupons scale, fixed coupons are re-clamped.
func (a *Applied) Recompute(subtotal decimal.Decimal) decimal.Decimal {
	a.Discount = discountFor(a.Kind, a.Value, subtotal)
	return a.Discount
}

func discountFor(kind DiscountKind, value, subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch kind {
	case KindPercentage:
		discount = subtotal.Mul(value).Div(oneHundred)
	default:
		discount = value
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	return discount.Round(2)
}
