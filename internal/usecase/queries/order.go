package queries

import (
	"context"
	"time"

	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderItemView struct {
	ProductID   uuid.UUID
	VariationID *uuid.UUID
	Name        string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

type OrderView struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerEmail string
	PostalCode    string
	Street        string
	Number        string
	Complement    *string
	District      string
	City          string
	State         string
	Subtotal      decimal.Decimal
	Shipping      decimal.Decimal
	CouponCode    *string
	Discount      decimal.Decimal
	Total         decimal.Decimal
	Status        string
	Items         []OrderItemView
	CreatedAt     time.Time
}

type OrderListItem struct {
	ID           uuid.UUID
	CustomerName string
	Total        decimal.Decimal
	Status       string
	CreatedAt    time.Time
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	List(ctx context.Context, limit, offset int) ([]OrderListItem, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListOrders(ctx context.Context, limit, offset int) ([]OrderListItem, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *orderQueriesImpl) ListOrders(ctx context.Context, limit, offset int) ([]OrderListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	items, err := q.readStore.List(ctx, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
