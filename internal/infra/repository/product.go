package repository

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProductRepository struct {
	db db.DBTX
}

func NewProductRepository(dbtx db.DBTX) *ProductRepository {
	return &ProductRepository{db: dbtx}
}

const insertProductSQL = `
INSERT INTO products (id, name, description, base_price)
VALUES ($1, $2, $3, $4)
`

func (r *ProductRepository) Create(ctx context.Context, params shared.CreateProductParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, insertProductSQL,
		pgconv.UUIDToPgtype(id),
		params.Name,
		params.Description,
		pgconv.NumericFromDecimal(params.BasePrice),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert product", err)
	}
	return id, nil
}

const insertVariationSQL = `
INSERT INTO variations (id, product_id, name, additional_price, sku)
VALUES ($1, $2, $3, $4, $5)
`

func (r *ProductRepository) CreateVariation(ctx context.Context, params shared.CreateVariationParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, insertVariationSQL,
		pgconv.UUIDToPgtype(id),
		pgconv.UUIDToPgtype(params.ProductID),
		params.Name,
		pgconv.NumericFromDecimal(params.AdditionalPrice),
		pgconv.StringPtrToPgtype(params.SKU),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("variation sku already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert variation", err)
	}
	return id, nil
}
