package shared

import (
	"context"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitOfWork runs write operations inside a single database transaction
// with retry on transient serialization failures. Finalization depends
// on it: either every write in fn commits, or none do.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Orders() OrderRepository
	Stock() StockRepository
	Coupons() CouponRepository
	Products() ProductRepository
}

type OrderRepository interface {
	// Create persists the order row together with all of its item rows.
	Create(ctx context.Context, o *order.Order) (uuid.UUID, error)
}

type StockRepository interface {
	// DecrementIfAvailable decrements the stock row for the exact
	// (product, variation|nil) line, but only when the remaining
	// quantity stays non-negative. A decrement that would go negative
	// reports an INSUFFICIENT_STOCK repository error.
	DecrementIfAvailable(ctx context.Context, line catalog.StockLine) error
	// Upsert sets the absolute quantity of the line.
	Upsert(ctx context.Context, line catalog.StockLine) error
}

type CouponRepository interface {
	// IncrementUse bumps the use counter, respecting the max-uses cap.
	IncrementUse(ctx context.Context, couponID uuid.UUID) error
	Create(ctx context.Context, params CreateCouponParams) (uuid.UUID, error)
	SetActive(ctx context.Context, couponID uuid.UUID, active bool) error
}

type ProductRepository interface {
	Create(ctx context.Context, params CreateProductParams) (uuid.UUID, error)
	CreateVariation(ctx context.Context, params CreateVariationParams) (uuid.UUID, error)
}

type CreateCouponParams struct {
	Code        string
	Kind        string
	Value       decimal.Decimal
	MinSubtotal decimal.Decimal
	ExpiresAt   *time.Time
	MaxUses     *int32
}

type CreateProductParams struct {
	Name        string
	Description string
	BasePrice   decimal.Decimal
}

type CreateVariationParams struct {
	ProductID       uuid.UUID
	Name            string
	AdditionalPrice decimal.Decimal
	SKU             *string
}
