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

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(dbtx db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: dbtx}
}

const couponByCodeSQL = `
SELECT id, code, kind, value, min_subtotal, expires_at, max_uses, current_uses, active, created_at
FROM coupons
WHERE code = $1
`

func (s *CouponReadStore) FindByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	var (
		id          pgtype.UUID
		dbCode      string
		kind        string
		value       pgtype.Numeric
		minSubtotal pgtype.Numeric
		expiresAt   pgtype.Timestamptz
		maxUses     pgtype.Int4
		currentUses int32
		active      bool
		createdAt   pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, couponByCodeSQL, code).Scan(
		&id, &dbCode, &kind, &value, &minSubtotal,
		&expiresAt, &maxUses, &currentUses, &active, &createdAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch coupon", err)
	}

	discountValue, err := pgconv.DecimalFromNumeric(value)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coupon value", err)
	}
	minimum, err := pgconv.DecimalFromNumeric(minSubtotal)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid coupon minimum", err)
	}

	return &shared.CouponSnapshot{
		ID:          uuid.UUID(id.Bytes),
		Code:        dbCode,
		Kind:        kind,
		Value:       discountValue,
		MinSubtotal: minimum,
		ExpiresAt:   pgconv.TimePtrFromPgtype(expiresAt),
		MaxUses:     pgconv.Int32PtrFromPgtype(maxUses),
		CurrentUses: currentUses,
		Active:      active,
		CreatedAt:   createdAt.Time,
	}, nil
}

const listCouponsSQL = `
SELECT id, code, kind, value, min_subtotal, expires_at, max_uses, current_uses, active, created_at
FROM coupons
ORDER BY created_at DESC, code
`

func (s *CouponReadStore) List(ctx context.Context) ([]queries.CouponListItem, error) {
	rows, err := s.db.Query(ctx, listCouponsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	items := make([]queries.CouponListItem, 0)
	for rows.Next() {
		var (
			id          pgtype.UUID
			code        string
			kind        string
			value       pgtype.Numeric
			minSubtotal pgtype.Numeric
			expiresAt   pgtype.Timestamptz
			maxUses     pgtype.Int4
			currentUses int32
			active      bool
			createdAt   pgtype.Timestamptz
		)
		if err := rows.Scan(&id, &code, &kind, &value, &minSubtotal,
			&expiresAt, &maxUses, &currentUses, &active, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		discountValue, err := pgconv.DecimalFromNumeric(value)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coupon value", err)
		}
		minimum, err := pgconv.DecimalFromNumeric(minSubtotal)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid coupon minimum", err)
		}
		items = append(items, queries.CouponListItem{
			ID:          uuid.UUID(id.Bytes),
			Code:        code,
			Kind:        kind,
			Value:       discountValue,
			MinSubtotal: minimum,
			ExpiresAt:   pgconv.TimePtrFromPgtype(expiresAt),
			MaxUses:     pgconv.Int32PtrFromPgtype(maxUses),
			CurrentUses: currentUses,
			Active:      active,
			CreatedAt:   createdAt.Time,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}
	return items, nil
}
