package order

import (
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/coupon"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is an immutable snapshot of one cart line at finalization time.
type Item struct {
	ProductID   uuid.UUID
	VariationID *uuid.UUID
	Name        string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

type Order struct {
	id         uuid.UUID
	customer   Customer
	address    Address
	items      []Item
	subtotal   decimal.Decimal
	shipping   decimal.Decimal
	couponID   *uuid.UUID
	couponCode *string
	discount   decimal.Decimal
	total      decimal.Decimal
	status     Status
	createdAt  time.Time
}

// NewOrder assembles a pending order from the live cart, the recomputed
// quote and the optional applied coupon. The cart must be non-empty and
// the address complete; amounts come from the quote, never the client.
func NewOrder(c *cart.Cart, customer Customer, address Address, quote Quote, applied *coupon.Applied) (*Order, error) {
	if c == nil || c.IsEmpty() {
		return nil, errs.ErrEmptyCart
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}

	lines := c.Lines()
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		items = append(items, Item{
			ProductID:   line.ProductID,
			VariationID: line.VariationID,
			Name:        line.Name,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Subtotal:    line.Subtotal(),
		})
	}

	o := &Order{
		id:       uuid.New(),
		customer: customer,
		address:  address,
		items:    items,
		subtotal: quote.Subtotal,
		shipping: quote.Shipping,
		discount: quote.Discount,
		total:    quote.Total,
		status:   StatusPending,
	}
	if applied != nil {
		id := applied.CouponID
		code := applied.Code
		o.couponID = &id
		o.couponCode = &code
	}
	return o, nil
}

func ReconstructOrder(
	id uuid.UUID,
	customer Customer,
	address Address,
	items []Item,
	subtotal, shipping, discount, total decimal.Decimal,
	couponID *uuid.UUID,
	couponCode *string,
	status Status,
	createdAt time.Time,
) *Order {
	return &Order{
		id:         id,
		customer:   customer,
		address:    address,
		items:      items,
		subtotal:   subtotal,
		shipping:   shipping,
		discount:   discount,
		total:      total,
		couponID:   couponID,
		couponCode: couponCode,
		status:     status,
		createdAt:  createdAt,
	}
}

func (o *Order) ID() uuid.UUID             { return o.id }
func (o *Order) Customer() Customer        { return o.customer }
func (o *Order) Address() Address          { return o.address }
func (o *Order) Items() []Item             { return o.items }
func (o *Order) Subtotal() decimal.Decimal { return o.subtotal }
func (o *Order) Shipping() decimal.Decimal { return o.shipping }
func (o *Order) CouponID() *uuid.UUID      { return o.couponID }
func (o *Order) CouponCode() *string       { return o.couponCode }
func (o *Order) Discount() decimal.Decimal { return o.discount }
func (o *Order) Total() decimal.Decimal    { return o.total }
func (o *Order) Status() Status            { return o.status }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
