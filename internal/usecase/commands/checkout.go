package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type FinalizeParams struct {
	CustomerName  string
	CustomerEmail string
	Number        string
	Complement    string
}

type CheckoutCommands interface {
	// Finalize converts the session cart into a persisted order:
	// order row, item rows, stock decrements and the coupon-use
	// increment all commit in one transaction or not at all. On
	// success the cart, applied coupon and held address are cleared
	// from the session.
	Finalize(ctx context.Context, sessionID uuid.UUID, params FinalizeParams) (uuid.UUID, error)
}

type checkoutCommandsImpl struct {
	catalog  CatalogReader
	coupons  CouponReader
	sessions SessionStore
	uow      shared.UnitOfWork
	clock    clock.Clock
}

func NewCheckoutCommands(
	catalog CatalogReader,
	coupons CouponReader,
	sessions SessionStore,
	uow shared.UnitOfWork,
	clock clock.Clock,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		catalog:  catalog,
		coupons:  coupons,
		sessions: sessions,
		uow:      uow,
		clock:    clock,
	}
}

func (c *checkoutCommandsImpl) Finalize(ctx context.Context, sessionID uuid.UUID, params FinalizeParams) (uuid.UUID, error) {
	state, err := c.sessions.Load(ctx, sessionID)
	if err != nil {
		return uuid.Nil, err
	}

	if state.Cart == nil || state.Cart.IsEmpty() {
		return uuid.Nil, errs.ErrEmptyCart
	}

	customer, err := order.NewCustomer(params.CustomerName, params.CustomerEmail)
	if err != nil {
		return uuid.Nil, err
	}

	if state.Address == nil {
		return uuid.Nil, errs.ErrIncompleteAddress
	}
	address := *state.Address
	address.Number = params.Number
	address.Complement = params.Complement
	if err := address.Validate(); err != nil {
		return uuid.Nil, err
	}

	if err := c.guardVariationLines(ctx, state); err != nil {
		return uuid.Nil, err
	}

	// Totals are recomputed server-side from the live cart and live
	// coupon state; client-submitted amounts never enter here.
	applied, err := c.revalidateCoupon(ctx, state)
	if err != nil {
		return uuid.Nil, err
	}
	quote := order.ComputeQuote(state.Cart.Subtotal(), applied)

	newOrder, err := order.NewOrder(state.Cart, customer, address, quote, applied)
	if err != nil {
		return uuid.Nil, err
	}

	var orderID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Orders().Create(ctx, newOrder)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		orderID = id

		for _, item := range newOrder.Items() {
			line := catalog.StockLine{ProductID: item.ProductID, VariationID: item.VariationID, Quantity: item.Quantity}
			if err := tx.Stock().DecrementIfAvailable(ctx, line); err != nil {
				if infra.IsKind(err, infra.KindInsufficientStock) || infra.IsKind(err, infra.KindNotFound) {
					return errs.Wrap(errs.ErrInsufficientStock, item.Name)
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		if applied != nil {
			if err := tx.Coupons().IncrementUse(ctx, applied.CouponID); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.ErrCouponUsageLimitReached
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	// Order committed; the session is reset even if the save fails, in
	// which case the stale state only survives until the TTL sweep.
	state.Cart.Clear()
	state.Coupon = nil
	state.Address = nil
	if err := c.sessions.Save(ctx, sessionID, state); err != nil {
		slog.Warn("failed to clear session after checkout",
			"session_id", sessionID, "order_id", orderID, "error", err.Error())
	}

	return orderID, nil
}

// guardVariationLines rejects any nil-variation cart line whose product
// actually carries variations: decrementing the wrong stock row would
// otherwise corrupt inventory.
func (c *checkoutCommandsImpl) guardVariationLines(ctx context.Context, state *shared.SessionState) error {
	for _, line := range state.Cart.Lines() {
		if line.VariationID != nil {
			continue
		}
		product, err := c.catalog.ProductByID(ctx, line.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrap(errs.ErrProductNotFound, line.Name)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if product.HasVariations {
			return errs.Wrap(errs.ErrVariationRequired, line.Name)
		}
	}
	return nil
}

// revalidateCoupon re-reads the coupon from the directory and replays
// the full validation chain against the current subtotal. A coupon that
// went inactive, expired or hit its usage cap since application fails
// the checkout rather than silently pricing with a stale discount.
func (c *checkoutCommandsImpl) revalidateCoupon(ctx context.Context, state *shared.SessionState) (*coupon.Applied, error) {
	if state.Coupon == nil {
		return nil, nil
	}

	snapshot, err := c.coupons.FindByCode(ctx, state.Coupon.Code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := couponFromSnapshot(snapshot)
	if err != nil {
		return nil, err
	}

	subtotal := state.Cart.Subtotal()
	if err := entity.Validate(c.clock.Now(), subtotal); err != nil {
		return nil, err
	}

	return coupon.NewApplied(entity, subtotal), nil
}
