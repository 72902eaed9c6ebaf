package commands

import (
	"context"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/catalog"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

type CartCommands interface {
	// AddItem puts quantity units of a product (or one of its
	// variations) into the session cart. The reported adjusted flag
	// means the quantity was clamped to available stock.
	AddItem(ctx context.Context, sessionID uuid.UUID, productID uuid.UUID, variationID *uuid.UUID, quantity int) (adjusted bool, err error)
	// UpdateItem sets a line to the given quantity; zero or less removes it.
	UpdateItem(ctx context.Context, sessionID uuid.UUID, lineID string, quantity int) (adjusted bool, err error)
	RemoveItem(ctx context.Context, sessionID uuid.UUID, lineID string) error
}

type cartCommandsImpl struct {
	catalog  CatalogReader
	stock    StockReader
	sessions SessionStore
}

func NewCartCommands(catalog CatalogReader, stock StockReader, sessions SessionStore) CartCommands {
	return &cartCommandsImpl{
		catalog:  catalog,
		stock:    stock,
		sessions: sessions,
	}
}

func (c *cartCommandsImpl) AddItem(
	ctx context.Context,
	sessionID uuid.UUID,
	productID uuid.UUID,
	variationID *uuid.UUID,
	quantity int,
) (bool, error) {
	if quantity <= 0 {
		return false, errs.ErrInvalidQuantity
	}

	snapshot, err := c.catalog.ProductByID(ctx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.ErrProductNotFound
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	product := catalog.ReconstructProduct(snapshot.ID, snapshot.Name, snapshot.Description, snapshot.BasePrice, snapshot.CreatedAt)

	name := product.Name()
	unitPrice := product.BasePrice()

	if variationID != nil {
		vs, err := c.catalog.VariationByID(ctx, *variationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return false, errs.ErrVariationNotFound
			}
			return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if vs.ProductID != productID {
			return false, errs.ErrVariationNotFound
		}
		variation := catalog.ReconstructVariation(vs.ID, vs.ProductID, vs.Name, vs.AdditionalPrice, vs.SKU)
		name = variation.DisplayName(product.Name())
		unitPrice = variation.Price(product.BasePrice())
	} else if snapshot.HasVariations {
		// A product carrying variations is never sold against its
		// nil-variation stock line.
		return false, errs.ErrVariationRequired
	}

	// Stock is always re-read at mutation time, never from a cached snapshot.
	available, err := c.stock.Quantity(ctx, productID, variationID)
	if err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	state, err := c.sessions.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}

	adjusted, err := state.Cart.Upsert(cart.Line{
		ProductID:   productID,
		VariationID: variationID,
		Name:        name,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	}, available)
	if err != nil {
		return false, err
	}

	if err := c.sessions.Save(ctx, sessionID, state); err != nil {
		return false, err
	}
	return adjusted, nil
}

func (c *cartCommandsImpl) UpdateItem(ctx context.Context, sessionID uuid.UUID, lineID string, quantity int) (bool, error) {
	state, err := c.sessions.Load(ctx, sessionID)
	if err != nil {
		return false, err
	}

	line, ok := state.Cart.Line(lineID)
	if !ok {
		return false, errs.ErrLineNotFound
	}

	available := 0
	if quantity > 0 {
		available, err = c.stock.Quantity(ctx, line.ProductID, line.VariationID)
		if err != nil {
			return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	adjusted, err := state.Cart.SetQuantity(lineID, quantity, available)
	if err != nil {
		return false, err
	}

	if err := c.sessions.Save(ctx, sessionID, state); err != nil {
		return false, err
	}
	return adjusted, nil
}

func (c *cartCommandsImpl) RemoveItem(ctx context.Context, sessionID uuid.UUID, lineID string) error {
	state, err := c.sessions.Load(ctx, sessionID)
	if err != nil {
		return err
	}

	if err := state.Cart.Remove(lineID); err != nil {
		return err
	}

	return c.sessions.Save(ctx, sessionID, state)
}
