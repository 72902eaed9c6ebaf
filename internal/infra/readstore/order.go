package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderByIDSQL = `
SELECT id, customer_name, customer_email,
       postal_code, street, number, complement, district, city, state,
       subtotal, shipping_fee, coupon_code, discount, total, status, created_at
FROM orders
WHERE id = $1
`

const orderItemsSQL = `
SELECT product_id, variation_id, name, quantity, unit_price, subtotal
FROM order_items
WHERE order_id = $1
ORDER BY name, product_id
`

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		oid         pgtype.UUID
		name        string
		email       string
		postalCode  string
		street      string
		number      string
		complement  pgtype.Text
		district    string
		city        string
		state       string
		subtotal    pgtype.Numeric
		shippingFee pgtype.Numeric
		couponCode  pgtype.Text
		discount    pgtype.Numeric
		total       pgtype.Numeric
		status      string
		createdAt   pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, orderByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&oid, &name, &email,
		&postalCode, &street, &number, &complement, &district, &city, &state,
		&subtotal, &shippingFee, &couponCode, &discount, &total, &status, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch order", err)
	}

	amounts, err := decimalsFromNumerics(subtotal, shippingFee, discount, total)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid order amount", err)
	}

	view := &queries.OrderView{
		ID:            uuid.UUID(oid.Bytes),
		CustomerName:  name,
		CustomerEmail: email,
		PostalCode:    postalCode,
		Street:        street,
		Number:        number,
		Complement:    pgconv.StringPtrFromPgtype(complement),
		District:      district,
		City:          city,
		State:         state,
		Subtotal:      amounts[0],
		Shipping:      amounts[1],
		CouponCode:    pgconv.StringPtrFromPgtype(couponCode),
		Discount:      amounts[2],
		Total:         amounts[3],
		Status:        status,
		CreatedAt:     createdAt.Time,
	}

	rows, err := s.db.Query(ctx, orderItemsSQL, pgconv.UUIDToPgtype(id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID   pgtype.UUID
			variationID pgtype.UUID
			itemName    string
			quantity    int
			unitPrice   pgtype.Numeric
			itemTotal   pgtype.Numeric
		)
		if err := rows.Scan(&productID, &variationID, &itemName, &quantity, &unitPrice, &itemTotal); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item row", err)
		}
		itemAmounts, err := decimalsFromNumerics(unitPrice, itemTotal)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid order item amount", err)
		}
		view.Items = append(view.Items, queries.OrderItemView{
			ProductID:   uuid.UUID(productID.Bytes),
			VariationID: pgconv.UUIDPtrFromPgtype(variationID),
			Name:        itemName,
			Quantity:    quantity,
			UnitPrice:   itemAmounts[0],
			Subtotal:    itemAmounts[1],
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order item rows", err)
	}
	return view, nil
}

const listOrdersSQL = `
SELECT id, customer_name, total, status, created_at
FROM orders
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2
`

func (s *OrderReadStore) List(ctx context.Context, limit, offset int) ([]queries.OrderListItem, error) {
	rows, err := s.db.Query(ctx, listOrdersSQL, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	items := make([]queries.OrderListItem, 0)
	for rows.Next() {
		var (
			id        pgtype.UUID
			name      string
			total     pgtype.Numeric
			status    string
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &name, &total, &status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		amount, err := pgconv.DecimalFromNumeric(total)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid order total", err)
		}
		items = append(items, queries.OrderListItem{
			ID:           uuid.UUID(id.Bytes),
			CustomerName: name,
			Total:        amount,
			Status:       status,
			CreatedAt:    createdAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}
	return items, nil
}

func decimalsFromNumerics(values ...pgtype.Numeric) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := pgconv.DecimalFromNumeric(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
