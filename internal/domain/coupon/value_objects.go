package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountKind    = errors.New("invalid discount kind")
	ErrInvalidDiscountValue   = errors.New("discount value must be positive")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

// NewCode normalizes a raw coupon code: trimmed, uppercased, restricted
// to the allowed character set.
func NewCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// DiscountKind is a closed variant: a coupon is either a fixed currency
// amount or a percentage of the subtotal, never both.
type DiscountKind string

const (
	KindFixed      DiscountKind = "fixed"
	KindPercentage DiscountKind = "percentage"
)

func NewDiscountKind(s string) (DiscountKind, error) {
	switch DiscountKind(s) {
	case KindFixed, KindPercentage:
		return DiscountKind(s), nil
	default:
		return "", ErrInvalidDiscountKind
	}
}

func (k DiscountKind) String() string {
	return string(k)
}
