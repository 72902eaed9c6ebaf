package repository

import (
	"context"
	"errors"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(dbtx db.DBTX) *CouponRepository {
	return &CouponRepository{db: dbtx}
}

// incrementCouponUseSQL re-checks the usage cap at write time, so a
// coupon validated against stale session state still cannot exceed
// max_uses under concurrent checkouts.
const incrementCouponUseSQL = `
UPDATE coupons
SET current_uses = current_uses + 1
WHERE id = $1
  AND active
  AND (max_uses IS NULL OR current_uses < max_uses)
`

func (r *CouponRepository) IncrementUse(ctx context.Context, couponID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, incrementCouponUseSQL, pgconv.UUIDToPgtype(couponID))
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon use", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon is exhausted or no longer active", nil, infra.KindNotFound)
	}
	return nil
}

const insertCouponSQL = `
INSERT INTO coupons (id, code, kind, value, min_subtotal, expires_at, max_uses, current_uses, active)
VALUES ($1, $2, $3, $4, $5, $6, $7, 0, TRUE)
`

func (r *CouponRepository) Create(ctx context.Context, params shared.CreateCouponParams) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx, insertCouponSQL,
		pgconv.UUIDToPgtype(id),
		params.Code,
		params.Kind,
		pgconv.NumericFromDecimal(params.Value),
		pgconv.NumericFromDecimal(params.MinSubtotal),
		pgconv.TimePtrToPgtype(params.ExpiresAt),
		pgconv.Int32PtrToPgtype(params.MaxUses),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("coupon code already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert coupon", err)
	}
	return id, nil
}

const setCouponActiveSQL = `UPDATE coupons SET active = $2 WHERE id = $1`

func (r *CouponRepository) SetActive(ctx context.Context, couponID uuid.UUID, active bool) error {
	tag, err := r.db.Exec(ctx, setCouponActiveSQL, pgconv.UUIDToPgtype(couponID), active)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
