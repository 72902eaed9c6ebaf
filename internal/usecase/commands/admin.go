package commands

import (
	"context"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/coupon"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

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
	Stock       int
	Variations  []CreateVariationParams
}

type CreateVariationParams struct {
	Name            string
	AdditionalPrice decimal.Decimal
	SKU             *string
	Stock           int
}

var ErrDuplicateCouponCode = errs.New("coupon code already exists")

// AdminCommands is the back-office surface: coupon and product
// management used by the storefront operators.
type AdminCommands interface {
	CreateCoupon(ctx context.Context, params CreateCouponParams) (uuid.UUID, error)
	SetCouponActive(ctx context.Context, couponID uuid.UUID, active bool) error
	CreateProduct(ctx context.Context, params CreateProductParams) (uuid.UUID, error)
	SetStock(ctx context.Context, productID uuid.UUID, variationID *uuid.UUID, quantity int) error
}

type adminCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewAdminCommands(uow shared.UnitOfWork) AdminCommands {
	return &adminCommandsImpl{uow: uow}
}

func (a *adminCommandsImpl) CreateCoupon(ctx context.Context, params CreateCouponParams) (uuid.UUID, error) {
	kind, err := coupon.NewDiscountKind(params.Kind)
	if err != nil {
		return uuid.Nil, err
	}
	// Constructor validation only; the entity itself is persisted from params.
	if _, err := coupon.NewCoupon(uuid.New(), params.Code, kind, params.Value, params.MinSubtotal, params.ExpiresAt, params.MaxUses); err != nil {
		return uuid.Nil, err
	}

	code, _ := coupon.NewCode(params.Code)

	var couponID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Coupons().Create(ctx, shared.CreateCouponParams{
			Code:        code.String(),
			Kind:        kind.String(),
			Value:       params.Value,
			MinSubtotal: params.MinSubtotal,
			ExpiresAt:   params.ExpiresAt,
			MaxUses:     params.MaxUses,
		})
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateCouponCode
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		couponID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return couponID, nil
}

func (a *adminCommandsImpl) SetCouponActive(ctx context.Context, couponID uuid.UUID, active bool) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Coupons().SetActive(ctx, couponID, active); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrCouponNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// CreateProduct persists the product, its variations and their initial
// stock lines in one transaction. Products with variations get no
// sellable nil-variation stock line.
func (a *adminCommandsImpl) CreateProduct(ctx context.Context, params CreateProductParams) (uuid.UUID, error) {
	// Entities validate and normalize; the persisted values come from
	// their getters so whitespace never reaches the catalog.
	product, err := catalog.NewProduct(uuid.New(), params.Name, params.Description, params.BasePrice)
	if err != nil {
		return uuid.Nil, err
	}
	variations := make([]*catalog.Variation, len(params.Variations))
	for i, v := range params.Variations {
		variation, err := catalog.NewVariation(uuid.New(), product.ID(), v.Name, v.AdditionalPrice, v.SKU)
		if err != nil {
			return uuid.Nil, err
		}
		variations[i] = variation
	}

	var productID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Products().Create(ctx, shared.CreateProductParams{
			Name:        product.Name(),
			Description: product.Description(),
			BasePrice:   product.BasePrice(),
		})
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		productID = id

		if len(variations) == 0 {
			return tx.Stock().Upsert(ctx, catalog.StockLine{ProductID: productID, Quantity: params.Stock})
		}

		for i, variation := range variations {
			variationID, err := tx.Products().CreateVariation(ctx, shared.CreateVariationParams{
				ProductID:       productID,
				Name:            variation.Name(),
				AdditionalPrice: variation.AdditionalPrice(),
				SKU:             variation.SKU(),
			})
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			line := catalog.StockLine{ProductID: productID, VariationID: &variationID, Quantity: params.Variations[i].Stock}
			if err := tx.Stock().Upsert(ctx, line); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return productID, nil
}

func (a *adminCommandsImpl) SetStock(ctx context.Context, productID uuid.UUID, variationID *uuid.UUID, quantity int) error {
	if quantity < 0 {
		return errs.ErrInvalidQuantity
	}
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		line := catalog.StockLine{ProductID: productID, VariationID: variationID, Quantity: quantity}
		if err := tx.Stock().Upsert(ctx, line); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
