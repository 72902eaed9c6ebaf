package order

import (
	"storefront/internal/domain/coupon"

	"github.com/shopspring/decimal"
)

// Flat-rate shipping brackets, evaluated in precedence order on the
// cart subtotal. The 166.60-200.00 band deliberately falls back to the
// standard rate; free shipping starts strictly above 200.00.
var (
	shippingBandLow  = decimal.NewFromFloat(52.00)
	shippingBandHigh = decimal.NewFromFloat(166.59)
	freeShippingOver = decimal.NewFromFloat(200.00)

	shippingReduced  = decimal.NewFromFloat(15.00)
	shippingStandard = decimal.NewFromFloat(20.00)
)

// Quote is the server-side recomputation of all order amounts from the
// live cart and coupon state. Client-submitted totals are never trusted.
type Quote struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// ShippingFor returns the shipping fee for a subtotal per the bracket table.
func ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	switch {
	case !subtotal.IsPositive():
		return decimal.Zero
	case subtotal.GreaterThanOrEqual(shippingBandLow) && subtotal.LessThanOrEqual(shippingBandHigh):
		return shippingReduced
	case subtotal.GreaterThan(freeShippingOver):
		return decimal.Zero
	default:
		return shippingStandard
	}
}

// ComputeQuote prices a cart subtotal with an optionally applied coupon.
// The coupon discount is re-derived from the current subtotal, and the
// total is floored at zero.
func ComputeQuote(subtotal decimal.Decimal, applied *coupon.Applied) Quote {
	discount := decimal.Zero
	if applied != nil {
		discount = applied.Recompute(subtotal)
	}

	shipping := ShippingFor(subtotal)

	total := subtotal.Add(shipping).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Shipping: shipping,
		Total:    total,
	}
}
