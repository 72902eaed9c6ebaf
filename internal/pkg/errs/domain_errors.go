package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrProductNotFound   = errors.New("product not found")
	ErrVariationNotFound = errors.New("variation not found")

	// Cart errors
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrLineNotFound      = errors.New("cart line not found")
	ErrVariationRequired = errors.New("product requires a variation selection")

	// Coupon errors
	ErrEmptyCouponCode         = errors.New("coupon code is empty")
	ErrCouponNotFound          = errors.New("coupon not found")
	ErrCouponInactive          = errors.New("coupon is not active")
	ErrCouponExpired           = errors.New("coupon has expired")
	ErrCouponUsageLimitReached = errors.New("coupon usage limit reached")
	ErrCouponBelowMinimum      = errors.New("cart subtotal below coupon minimum")

	// Checkout errors
	ErrEmptyCart           = errors.New("cart is empty")
	ErrIncompleteAddress   = errors.New("delivery address is incomplete")
	ErrInvalidCustomerInfo = errors.New("invalid customer information")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrOrderNotFound       = errors.New("order not found")

	// Address lookup errors
	ErrCepNotFound         = errors.New("postal code not found")
	ErrAddressLookupFailed = errors.New("address lookup unavailable")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
