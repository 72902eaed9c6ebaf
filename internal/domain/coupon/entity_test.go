//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"storefront/internal/domain/coupon"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func i32(v int32) *int32 { return &v }

func TestNewCode(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "uppercased and trimmed", input: "  promo10 ", want: "PROMO10"},
		{name: "already canonical", input: "WELCOME", want: "WELCOME"},
		{name: "too short", input: "AB", errIs: coupon.ErrInvalidCouponCode},
		{name: "too long", input: "ABCDEFGHIJKLMNOPQRSTU", errIs: coupon.ErrInvalidCouponCode},
		{name: "disallowed characters", input: "SAVE-10", errIs: coupon.ErrInvalidCouponCode},
		{name: "empty", input: "", errIs: coupon.ErrInvalidCouponCode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := coupon.NewCode(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, code.String())
		})
	}
}

func TestNewCoupon(t *testing.T) {
	cases := []struct {
		name  string
		code  string
		kind  coupon.DiscountKind
		value string
		min   string
		errIs error
	}{
		{name: "valid fixed", code: "SAVE10", kind: coupon.KindFixed, value: "10.00", min: "0"},
		{name: "valid percentage", code: "PROMO10", kind: coupon.KindPercentage, value: "10", min: "50.00"},
		{name: "bad code", code: "x", kind: coupon.KindFixed, value: "10.00", min: "0", errIs: coupon.ErrInvalidCouponCode},
		{name: "bad kind", code: "SAVE10", kind: coupon.DiscountKind("bogus"), value: "10.00", min: "0", errIs: coupon.ErrInvalidDiscountKind},
		{name: "zero value", code: "SAVE10", kind: coupon.KindFixed, value: "0", min: "0", errIs: coupon.ErrInvalidDiscountValue},
		{name: "negative value", code: "SAVE10", kind: coupon.KindFixed, value: "-5", min: "0", errIs: coupon.ErrInvalidDiscountValue},
		{name: "percentage above 100", code: "PROMO", kind: coupon.KindPercentage, value: "101", min: "0", errIs: coupon.ErrInvalidDiscountPercent},
		{name: "negative minimum", code: "SAVE10", kind: coupon.KindFixed, value: "10.00", min: "-1", errIs: coupon.ErrInvalidDiscountValue},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := coupon.NewCoupon(uuid.New(), tc.code, tc.kind, dec(tc.value), dec(tc.min), nil, nil)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, c.IsActive(), "new coupons start active")
			assert.Equal(t, int32(0), c.CurrentUses())
		})
	}
}

func TestCouponValidate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	type fields struct {
		expiresAt   *time.Time
		maxUses     *int32
		currentUses int32
		active      bool
		minSubtotal string
	}
	base := fields{active: true, minSubtotal: "0"}

	cases := []struct {
		name     string
		mutate   func(f *fields)
		subtotal string
		errIs    error
	}{
		{
			name:     "valid coupon passes",
			mutate:   func(f *fields) {},
			subtotal: "100.00",
		},
		{
			name:     "inactive",
			mutate:   func(f *fields) { f.active = false },
			subtotal: "100.00",
			errIs:    errs.ErrCouponInactive,
		},
		{
			name:     "expired",
			mutate:   func(f *fields) { f.expiresAt = &past },
			subtotal: "100.00",
			errIs:    errs.ErrCouponExpired,
		},
		{
			name:     "not yet expired",
			mutate:   func(f *fields) { f.expiresAt = &future },
			subtotal: "100.00",
		},
		{
			name: "usage limit reached",
			mutate: func(f *fields) {
				f.maxUses = i32(1)
				f.currentUses = 1
			},
			subtotal: "100.00",
			errIs:    errs.ErrCouponUsageLimitReached,
		},
		{
			name:     "below minimum subtotal",
			mutate:   func(f *fields) { f.minSubtotal = "150.00" },
			subtotal: "100.00",
			errIs:    errs.ErrCouponBelowMinimum,
		},
		{
			name:     "exactly at minimum subtotal",
			mutate:   func(f *fields) { f.minSubtotal = "100.00" },
			subtotal: "100.00",
		},
		{
			name: "inactive wins over expired",
			mutate: func(f *fields) {
				f.active = false
				f.expiresAt = &past
			},
			subtotal: "100.00",
			errIs:    errs.ErrCouponInactive,
		},
		{
			name: "expired wins over usage limit",
			mutate: func(f *fields) {
				f.expiresAt = &past
				f.maxUses = i32(1)
				f.currentUses = 1
			},
			subtotal: "100.00",
			errIs:    errs.ErrCouponExpired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := base
			tc.mutate(&f)
			c := coupon.ReconstructCoupon(
				uuid.New(), coupon.Code("PROMO10"), coupon.KindPercentage,
				dec("10"), dec(f.minSubtotal),
				f.expiresAt, f.maxUses, f.currentUses, f.active, now,
			)
			err := c.Validate(now, dec(tc.subtotal))
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("below minimum message carries both amounts", func(t *testing.T) {
		c := coupon.ReconstructCoupon(
			uuid.New(), coupon.Code("PROMO10"), coupon.KindPercentage,
			dec("10"), dec("150.00"), nil, nil, 0, true, now,
		)
		err := c.Validate(now, dec("99.90"))
		require.ErrorIs(t, err, errs.ErrCouponBelowMinimum)
		assert.Contains(t, err.Error(), "99.90")
		assert.Contains(t, err.Error(), "150.00")
	})
}

func TestDiscountFor(t *testing.T) {
	now := time.Now()

	cases := []struct {
		name     string
		kind     coupon.DiscountKind
		value    string
		subtotal string
		want     string
	}{
		{name: "fixed amount", kind: coupon.KindFixed, value: "10.00", subtotal: "100.00", want: "10.00"},
		{name: "fixed clamped to subtotal", kind: coupon.KindFixed, value: "50.00", subtotal: "30.00", want: "30.00"},
		{name: "ten percent", kind: coupon.KindPercentage, value: "10", subtotal: "180.00", want: "18.00"},
		{name: "percentage rounds half up", kind: coupon.KindPercentage, value: "15", subtotal: "33.33", want: "5.00"},
		{name: "full percentage", kind: coupon.KindPercentage, value: "100", subtotal: "42.00", want: "42.00"},
		{name: "zero subtotal", kind: coupon.KindPercentage, value: "10", subtotal: "0", want: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := coupon.ReconstructCoupon(
				uuid.New(), coupon.Code("TESTCODE"), tc.kind,
				dec(tc.value), decimal.Zero, nil, nil, 0, true, now,
			)
			got := c.DiscountFor(dec(tc.subtotal))
			assert.True(t, got.Equal(dec(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestAppliedRecompute(t *testing.T) {
	t.Run("percentage scales with the subtotal", func(t *testing.T) {
		applied := &coupon.Applied{
			Kind:     coupon.KindPercentage,
			Value:    dec("10"),
			Discount: dec("18.00"),
		}
		got := applied.Recompute(dec("90.00"))
		assert.True(t, got.Equal(dec("9.00")))
		assert.True(t, applied.Discount.Equal(dec("9.00")))
	})

	t.Run("fixed is re-clamped when the cart shrinks", func(t *testing.T) {
		applied := &coupon.Applied{
			Kind:     coupon.KindFixed,
			Value:    dec("25.00"),
			Discount: dec("25.00"),
		}
		got := applied.Recompute(dec("12.50"))
		assert.True(t, got.Equal(dec("12.50")))
	})
}
