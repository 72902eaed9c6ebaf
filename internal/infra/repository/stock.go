package repository

import (
	"context"

	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/pgconv"
)

type StockRepository struct {
	db db.DBTX
}

func NewStockRepository(dbtx db.DBTX) *StockRepository {
	return &StockRepository{db: dbtx}
}

// The decrement is conditional on the remaining quantity staying
// non-negative, so two concurrent checkouts competing for the same line
// cannot both succeed: the row lock taken by the first UPDATE makes the
// second one re-evaluate the predicate and match zero rows.
const decrementStockSQL = `
UPDATE stock
SET quantity = quantity - $3
WHERE product_id = $1
  AND variation_id IS NOT DISTINCT FROM $2
  AND quantity >= $3
`

func (r *StockRepository) DecrementIfAvailable(ctx context.Context, line catalog.StockLine) error {
	tag, err := r.db.Exec(ctx, decrementStockSQL,
		pgconv.UUIDToPgtype(line.ProductID),
		pgconv.UUIDPtrToPgtype(line.VariationID),
		line.Quantity,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock decrement would go negative", nil, infra.KindInsufficientStock)
	}
	return nil
}

// The conflict target mirrors the coalesced unique index on stock, so
// nil-variation lines collide with themselves instead of duplicating.
const upsertStockSQL = `
INSERT INTO stock (product_id, variation_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (product_id, (COALESCE(variation_id, '00000000-0000-0000-0000-000000000000'::uuid)))
DO UPDATE SET quantity = EXCLUDED.quantity
`

func (r *StockRepository) Upsert(ctx context.Context, line catalog.StockLine) error {
	_, err := r.db.Exec(ctx, upsertStockSQL,
		pgconv.UUIDToPgtype(line.ProductID),
		pgconv.UUIDPtrToPgtype(line.VariationID),
		line.Quantity,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert stock line", err)
	}
	return nil
}
