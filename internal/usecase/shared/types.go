package shared

import (
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/coupon"
	"storefront/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep commands independent of read-side view types.

type ProductSnapshot struct {
	ID            uuid.UUID
	Name          string
	Description   string
	BasePrice     decimal.Decimal
	HasVariations bool
	CreatedAt     time.Time
}

type VariationSnapshot struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	Name            string
	AdditionalPrice decimal.Decimal
	SKU             *string
}

type CouponSnapshot struct {
	ID          uuid.UUID
	Code        string
	Kind        string
	Value       decimal.Decimal
	MinSubtotal decimal.Decimal
	ExpiresAt   *time.Time
	MaxUses     *int32
	CurrentUses int32
	Active      bool
	CreatedAt   time.Time
}

type AdminSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
}

// SessionState is everything the storefront keeps per browsing session:
// the cart, the applied coupon and the delivery address in progress.
// Lifecycle is tied to the session and cleared on successful checkout.
type SessionState struct {
	Cart    *cart.Cart      `json:"cart"`
	Coupon  *coupon.Applied `json:"coupon,omitempty"`
	Address *order.Address  `json:"address,omitempty"`
}

func NewSessionState() *SessionState {
	return &SessionState{Cart: cart.New()}
}

// Clone deep-copies the state. The session store hands out clones so
// concurrent requests on the same session never share cart internals.
func (s *SessionState) Clone() *SessionState {
	clone := &SessionState{Cart: s.Cart.Clone()}
	if s.Coupon != nil {
		applied := *s.Coupon
		clone.Coupon = &applied
	}
	if s.Address != nil {
		address := *s.Address
		clone.Address = &address
	}
	return clone
}
