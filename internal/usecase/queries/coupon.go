package queries

import (
	"context"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponListItem struct {
	ID          uuid.UUID
	Code        string
	Kind        string
	Value       decimal.Decimal
	MinSubtotal decimal.Decimal
	ExpiresAt   *time.Time
	MaxUses     *int32
	CurrentUses int32
	Active      bool
	CreatedAt   time.Time
}

type CouponReadStore interface {
	List(ctx context.Context) ([]CouponListItem, error)
}

type CouponQueries interface {
	ListCoupons(ctx context.Context) ([]CouponListItem, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) ListCoupons(ctx context.Context) ([]CouponListItem, error) {
	coupons, err := q.readStore.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return coupons, nil
}
