package queries

import (
	"context"
	"time"

	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductListItem struct {
	ID        uuid.UUID
	Name      string
	BasePrice decimal.Decimal
	CreatedAt time.Time
}

type VariationView struct {
	ID              uuid.UUID
	Name            string
	AdditionalPrice decimal.Decimal
	SKU             *string
	Price           decimal.Decimal
	Stock           int
}

type ProductView struct {
	ID          uuid.UUID
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Stock       int
	Variations  []VariationView
	CreatedAt   time.Time
}

type CatalogReadStore interface {
	ListProducts(ctx context.Context) ([]ProductListItem, error)
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type CatalogQueries interface {
	ListProducts(ctx context.Context) ([]ProductListItem, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context) ([]ProductListItem, error) {
	products, err := q.readStore.ListProducts(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return products, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	product, err := q.readStore.ProductByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return product, nil
}
