package queries

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/order"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLineView struct {
	LineID      string
	ProductID   uuid.UUID
	VariationID *uuid.UUID
	Name        string
	UnitPrice   decimal.Decimal
	Quantity    int
	Subtotal    decimal.Decimal
}

type CartView struct {
	Lines      []CartLineView
	CouponCode *string
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Shipping   decimal.Decimal
	Total      decimal.Decimal
	Address    *order.Address
}

type CartQueries interface {
	// View renders the session cart with amounts recomputed on every
	// read: the applied coupon is re-clamped against the live subtotal
	// and the shipping bracket re-evaluated.
	View(ctx context.Context, sessionID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	sessions commands.SessionStore
}

func NewCartQueries(sessions commands.SessionStore) CartQueries {
	return &cartQueriesImpl{sessions: sessions}
}

func (q *cartQueriesImpl) View(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	state, err := q.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	quote := order.ComputeQuote(state.Cart.Subtotal(), state.Coupon)

	lines := state.Cart.Lines()
	views := make([]CartLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, CartLineView{
			LineID:      cart.LineID(line.ProductID, line.VariationID),
			ProductID:   line.ProductID,
			VariationID: line.VariationID,
			Name:        line.Name,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Subtotal:    line.Subtotal(),
		})
	}

	view := &CartView{
		Lines:    views,
		Subtotal: quote.Subtotal,
		Discount: quote.Discount,
		Shipping: quote.Shipping,
		Total:    quote.Total,
		Address:  state.Address,
	}
	if state.Coupon != nil {
		code := state.Coupon.Code
		view.CouponCode = &code
	}
	return view, nil
}
