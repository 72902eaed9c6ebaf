package commands

import (
	"context"

	"storefront/internal/domain/order"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read-side collaborators consumed by the commands. Implementations
// live in internal/infra; cart and coupon operations tolerate slightly
// stale reads because checkout re-reads everything before committing.

type CatalogReader interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error)
	VariationByID(ctx context.Context, id uuid.UUID) (*shared.VariationSnapshot, error)
}

type StockReader interface {
	// Quantity returns the available quantity for the exact
	// (product, variation|nil) stock line; a missing line reads as zero.
	Quantity(ctx context.Context, productID uuid.UUID, variationID *uuid.UUID) (int, error)
}

type CouponReader interface {
	FindByCode(ctx context.Context, code string) (*shared.CouponSnapshot, error)
}

type AdminReader interface {
	FindByEmail(ctx context.Context, email string) (*shared.AdminSnapshot, error)
}

// SessionStore holds per-session state keyed by the session id cookie.
type SessionStore interface {
	Load(ctx context.Context, sessionID uuid.UUID) (*shared.SessionState, error)
	Save(ctx context.Context, sessionID uuid.UUID, state *shared.SessionState) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// AddressLookup resolves a postal code into a structured address via an
// external service. Implementations must bound the call with a timeout.
type AddressLookup interface {
	Lookup(ctx context.Context, postalCode string) (*order.Address, error)
}
