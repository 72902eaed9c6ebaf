package commands

import (
	"context"
	"strings"

	"storefront/internal/domain/coupon"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponCommands interface {
	// Apply validates a coupon code against the directory and the
	// current cart subtotal, then stores the applied record in the
	// session. Applying a new code replaces any existing one. Usage
	// counters are untouched until finalization.
	Apply(ctx context.Context, sessionID uuid.UUID, code string) (*coupon.Applied, error)
	// Remove clears the applied coupon from the session; local only.
	Remove(ctx context.Context, sessionID uuid.UUID) error
}

type couponCommandsImpl struct {
	coupons  CouponReader
	sessions SessionStore
	clock    clock.Clock
}

func NewCouponCommands(coupons CouponReader, sessions SessionStore, clock clock.Clock) CouponCommands {
	return &couponCommandsImpl{
		coupons:  coupons,
		sessions: sessions,
		clock:    clock,
	}
}

func (c *couponCommandsImpl) Apply(ctx context.Context, sessionID uuid.UUID, code string) (*coupon.Applied, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errs.ErrEmptyCouponCode
	}

	normalized, err := coupon.NewCode(code)
	if err != nil {
		return nil, errs.ErrCouponNotFound
	}

	state, err := c.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entity, err := c.lookupCoupon(ctx, normalized.String())
	if err != nil {
		return nil, err
	}

	subtotal := state.Cart.Subtotal()
	if err := entity.Validate(c.clock.Now(), subtotal); err != nil {
		return nil, err
	}

	applied := coupon.NewApplied(entity, subtotal)
	state.Coupon = applied

	if err := c.sessions.Save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return applied, nil
}

func (c *couponCommandsImpl) Remove(ctx context.Context, sessionID uuid.UUID) error {
	state, err := c.sessions.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	state.Coupon = nil
	return c.sessions.Save(ctx, sessionID, state)
}

func (c *couponCommandsImpl) lookupCoupon(ctx context.Context, code string) (*coupon.Coupon, error) {
	snapshot, err := c.coupons.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCouponNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return couponFromSnapshot(snapshot)
}

func couponFromSnapshot(s *shared.CouponSnapshot) (*coupon.Coupon, error) {
	kind, err := coupon.NewDiscountKind(s.Kind)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCouponNotFound)
	}
	return coupon.ReconstructCoupon(
		s.ID,
		coupon.Code(s.Code),
		kind,
		s.Value,
		s.MinSubtotal,
		s.ExpiresAt,
		s.MaxUses,
		s.CurrentUses,
		s.Active,
		s.CreatedAt,
	), nil
}
