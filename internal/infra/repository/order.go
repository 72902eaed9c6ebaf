package repository

import (
	"context"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

const insertOrderSQL = `
INSERT INTO orders (
	id, customer_name, customer_email,
	postal_code, street, number, complement, district, city, state,
	subtotal, shipping_fee, coupon_id, coupon_code, discount, total, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`

const insertOrderItemSQL = `
INSERT INTO order_items (order_id, product_id, variation_id, name, quantity, unit_price, subtotal)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

// Create inserts the order row and every item row. Callers are expected
// to run it inside a unit-of-work transaction.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	address := o.Address()

	var complement *string
	if address.Complement != "" {
		complement = &address.Complement
	}

	_, err := r.db.Exec(ctx, insertOrderSQL,
		pgconv.UUIDToPgtype(o.ID()),
		o.Customer().Name(),
		o.Customer().Email(),
		address.PostalCode,
		address.Street,
		address.Number,
		pgconv.StringPtrToPgtype(complement),
		address.District,
		address.City,
		address.State,
		pgconv.NumericFromDecimal(o.Subtotal()),
		pgconv.NumericFromDecimal(o.Shipping()),
		pgconv.UUIDPtrToPgtype(o.CouponID()),
		pgconv.StringPtrToPgtype(o.CouponCode()),
		pgconv.NumericFromDecimal(o.Discount()),
		pgconv.NumericFromDecimal(o.Total()),
		o.Status().String(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	for _, item := range o.Items() {
		_, err := r.db.Exec(ctx, insertOrderItemSQL,
			pgconv.UUIDToPgtype(o.ID()),
			pgconv.UUIDToPgtype(item.ProductID),
			pgconv.UUIDPtrToPgtype(item.VariationID),
			item.Name,
			item.Quantity,
			pgconv.NumericFromDecimal(item.UnitPrice),
			pgconv.NumericFromDecimal(item.Subtotal),
		)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert order item", err)
		}
	}

	return o.ID(), nil
}
