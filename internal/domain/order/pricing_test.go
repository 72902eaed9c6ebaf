//go:build unit

package order_test

import (
	"testing"

	"storefront/internal/domain/coupon"
	"storefront/internal/domain/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestShippingFor(t *testing.T) {
	cases := []struct {
		name     string
		subtotal string
		want     string
	}{
		{name: "empty cart ships free", subtotal: "0.00", want: "0.00"},
		{name: "small order pays standard", subtotal: "10.00", want: "20.00"},
		{name: "just below reduced band", subtotal: "51.99", want: "20.00"},
		{name: "reduced band lower bound", subtotal: "52.00", want: "15.00"},
		{name: "inside reduced band", subtotal: "100.00", want: "15.00"},
		{name: "reduced band upper bound", subtotal: "166.59", want: "15.00"},
		{name: "just above reduced band", subtotal: "166.60", want: "20.00"},
		{name: "at free shipping threshold", subtotal: "200.00", want: "20.00"},
		{name: "above free shipping threshold", subtotal: "200.01", want: "0.00"},
		{name: "large order ships free", subtotal: "999.00", want: "0.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := order.ShippingFor(dec(tc.subtotal))
			assert.True(t, got.Equal(dec(tc.want)), "got %s, want %s", got, tc.want)
		})
	}
}

func TestComputeQuote(t *testing.T) {
	t.Run("no coupon", func(t *testing.T) {
		quote := order.ComputeQuote(dec("100.00"), nil)
		assert.True(t, quote.Subtotal.Equal(dec("100.00")))
		assert.True(t, quote.Discount.IsZero())
		assert.True(t, quote.Shipping.Equal(dec("15.00")))
		assert.True(t, quote.Total.Equal(dec("115.00")))
	})

	t.Run("ten percent off a 180 cart still pays standard shipping", func(t *testing.T) {
		applied := &coupon.Applied{
			Kind:  coupon.KindPercentage,
			Value: dec("10"),
		}
		quote := order.ComputeQuote(dec("180.00"), applied)
		assert.True(t, quote.Discount.Equal(dec("18.00")))
		assert.True(t, quote.Shipping.Equal(dec("20.00")))
		assert.True(t, quote.Total.Equal(dec("182.00")), "got total %s", quote.Total)
	})

	t.Run("250 cart ships free", func(t *testing.T) {
		quote := order.ComputeQuote(dec("250.00"), nil)
		assert.True(t, quote.Shipping.IsZero())
		assert.True(t, quote.Total.Equal(dec("250.00")), "got total %s", quote.Total)
	})

	t.Run("fixed discount larger than subtotal is clamped", func(t *testing.T) {
		applied := &coupon.Applied{
			Kind:  coupon.KindFixed,
			Value: dec("500.00"),
		}
		quote := order.ComputeQuote(dec("30.00"), applied)
		assert.True(t, quote.Discount.Equal(dec("30.00")))
		// subtotal 30 + shipping 20 - discount 30
		assert.True(t, quote.Total.Equal(dec("20.00")))
	})

	t.Run("discount is recomputed from the live subtotal", func(t *testing.T) {
		applied := &coupon.Applied{
			Kind:     coupon.KindPercentage,
			Value:    dec("10"),
			Discount: dec("99.99"), // stale value from a previous cart state
		}
		quote := order.ComputeQuote(dec("50.00"), applied)
		assert.True(t, quote.Discount.Equal(dec("5.00")))
		assert.True(t, applied.Discount.Equal(dec("5.00")), "applied record is refreshed in place")
	})

	t.Run("total never goes negative", func(t *testing.T) {
		applied := &coupon.Applied{
			Kind:  coupon.KindFixed,
			Value: dec("10.00"),
		}
		quote := order.ComputeQuote(dec("0.00"), applied)
		assert.True(t, quote.Total.GreaterThanOrEqual(decimal.Zero))
	})
}
