package order

import (
	"regexp"
	"strings"

	"storefront/internal/pkg/errs"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Customer struct {
	name  string
	email string
}

func NewCustomer(name, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || !emailRegex.MatchString(email) {
		return Customer{}, errs.ErrInvalidCustomerInfo
	}
	return Customer{name: name, email: email}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Email() string { return c.email }

// Address is the full delivery address. Complement is the only optional
// field; everything else must be populated before finalization.
type Address struct {
	PostalCode string `json:"postal_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
}

func (a Address) Validate() error {
	if a.PostalCode == "" || a.Street == "" || a.Number == "" ||
		a.District == "" || a.City == "" || a.State == "" {
		return errs.ErrIncompleteAddress
	}
	return nil
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusShipped   Status = "shipped"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusShipped, StatusCancelled:
		return true
	default:
		return false
	}
}
