package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CatalogReadStore backs both the storefront catalog queries and the
// snapshot reads the cart commands need before mutating a session.
type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

const listProductsSQL = `
SELECT id, name, base_price, created_at
FROM products
ORDER BY created_at DESC, id
`

func (s *CatalogReadStore) ListProducts(ctx context.Context) ([]queries.ProductListItem, error) {
	rows, err := s.db.Query(ctx, listProductsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	items := make([]queries.ProductListItem, 0)
	for rows.Next() {
		var (
			id        pgtype.UUID
			name      string
			basePrice pgtype.Numeric
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &name, &basePrice, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		price, err := pgconv.DecimalFromNumeric(basePrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid product price", err)
		}
		items = append(items, queries.ProductListItem{
			ID:        uuid.UUID(id.Bytes),
			Name:      name,
			BasePrice: price,
			CreatedAt: createdAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return items, nil
}

const productViewSQL = `
SELECT p.id, p.name, p.description, p.base_price, p.created_at,
       COALESCE(s.quantity, 0)
FROM products p
LEFT JOIN stock s ON s.product_id = p.id AND s.variation_id IS NULL
WHERE p.id = $1
`

const productVariationsSQL = `
SELECT v.id, v.name, v.additional_price, v.sku, COALESCE(s.quantity, 0)
FROM variations v
LEFT JOIN stock s ON s.product_id = v.product_id AND s.variation_id = v.id
WHERE v.product_id = $1
ORDER BY v.name, v.id
`

func (s *CatalogReadStore) ProductByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	var (
		pid         pgtype.UUID
		name        string
		description string
		basePrice   pgtype.Numeric
		createdAt   pgtype.Timestamptz
		stock       int
	)
	err := s.db.QueryRow(ctx, productViewSQL, pgconv.UUIDToPgtype(id)).
		Scan(&pid, &name, &description, &basePrice, &createdAt, &stock)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch product", err)
	}

	price, err := pgconv.DecimalFromNumeric(basePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid product price", err)
	}

	view := &queries.ProductView{
		ID:          uuid.UUID(pid.Bytes),
		Name:        name,
		Description: description,
		BasePrice:   price,
		Stock:       stock,
		CreatedAt:   createdAt.Time,
	}

	rows, err := s.db.Query(ctx, productVariationsSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch variations", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			vid        pgtype.UUID
			vname      string
			additional pgtype.Numeric
			sku        pgtype.Text
			vstock     int
		)
		if err := rows.Scan(&vid, &vname, &additional, &sku, &vstock); err != nil {
			return nil, infra.WrapRepoErr("failed to scan variation row", err)
		}
		add, err := pgconv.DecimalFromNumeric(additional)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid variation price", err)
		}
		view.Variations = append(view.Variations, queries.VariationView{
			ID:              uuid.UUID(vid.Bytes),
			Name:            vname,
			AdditionalPrice: add,
			SKU:             pgconv.StringPtrFromPgtype(sku),
			Price:           view.BasePrice.Add(add),
			Stock:           vstock,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate variation rows", err)
	}
	return view, nil
}

const productSnapshotSQL = `
SELECT p.id, p.name, p.description, p.base_price, p.created_at,
       EXISTS (SELECT 1 FROM variations v WHERE v.product_id = p.id)
FROM products p
WHERE p.id = $1
`

// ProductSnapshot reads satisfy the command-side CatalogReader port.
func (s *CatalogReadStore) ProductSnapshot(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	var (
		pid           pgtype.UUID
		name          string
		description   string
		basePrice     pgtype.Numeric
		createdAt     pgtype.Timestamptz
		hasVariations bool
	)
	err := s.db.QueryRow(ctx, productSnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&pid, &name, &description, &basePrice, &createdAt, &hasVariations)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch product snapshot", err)
	}

	price, err := pgconv.DecimalFromNumeric(basePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid product price", err)
	}

	return &shared.ProductSnapshot{
		ID:            uuid.UUID(pid.Bytes),
		Name:          name,
		Description:   description,
		BasePrice:     price,
		HasVariations: hasVariations,
		CreatedAt:     createdAt.Time,
	}, nil
}

const variationSnapshotSQL = `
SELECT id, product_id, name, additional_price, sku
FROM variations
WHERE id = $1
`

func (s *CatalogReadStore) VariationSnapshot(ctx context.Context, id uuid.UUID) (*shared.VariationSnapshot, error) {
	var (
		vid        pgtype.UUID
		productID  pgtype.UUID
		name       string
		additional pgtype.Numeric
		sku        pgtype.Text
	)
	err := s.db.QueryRow(ctx, variationSnapshotSQL, pgconv.UUIDToPgtype(id)).
		Scan(&vid, &productID, &name, &additional, &sku)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("variation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch variation snapshot", err)
	}

	add, err := pgconv.DecimalFromNumeric(additional)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid variation price", err)
	}

	return &shared.VariationSnapshot{
		ID:              uuid.UUID(vid.Bytes),
		ProductID:       uuid.UUID(productID.Bytes),
		Name:            name,
		AdditionalPrice: add,
		SKU:             pgconv.StringPtrFromPgtype(sku),
	}, nil
}

// CatalogReader adapts the read store to the command-side ports, which
// want snapshots rather than rendered views.
type CatalogReader struct {
	store *CatalogReadStore
}

func NewCatalogReader(store *CatalogReadStore) *CatalogReader {
	return &CatalogReader{store: store}
}

func (r *CatalogReader) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	return r.store.ProductSnapshot(ctx, id)
}

func (r *CatalogReader) VariationByID(ctx context.Context, id uuid.UUID) (*shared.VariationSnapshot, error) {
	return r.store.VariationSnapshot(ctx, id)
}

func (r *CatalogReader) Quantity(ctx context.Context, productID uuid.UUID, variationID *uuid.UUID) (int, error) {
	return r.store.Quantity(ctx, productID, variationID)
}

const stockQuantitySQL = `
SELECT quantity
FROM stock
WHERE product_id = $1 AND variation_id IS NOT DISTINCT FROM $2
`

// Quantity satisfies the command-side StockReader port; a missing stock
// line reads as zero rather than an error.
func (s *CatalogReadStore) Quantity(ctx context.Context, productID uuid.UUID, variationID *uuid.UUID) (int, error) {
	var quantity int
	err := s.db.QueryRow(ctx, stockQuantitySQL,
		pgconv.UUIDToPgtype(productID),
		pgconv.UUIDPtrToPgtype(variationID),
	).Scan(&quantity)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to fetch stock quantity", err)
	}
	return quantity, nil
}
