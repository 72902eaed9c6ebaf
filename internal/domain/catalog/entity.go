package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

type Product struct {
	id          uuid.UUID
	name        string
	description string
	basePrice   decimal.Decimal
	createdAt   time.Time
}

func NewProduct(id uuid.UUID, name, description string, basePrice decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Product{
		id:          id,
		name:        name,
		description: strings.TrimSpace(description),
		basePrice:   basePrice,
	}, nil
}

func ReconstructProduct(id uuid.UUID, name, description string, basePrice decimal.Decimal, createdAt time.Time) *Product {
	return &Product{
		id:          id,
		name:        name,
		description: description,
		basePrice:   basePrice,
		createdAt:   createdAt,
	}
}

func (p *Product) ID() uuid.UUID             { return p.id }
func (p *Product) Name() string              { return p.name }
func (p *Product) Description() string       { return p.description }
func (p *Product) BasePrice() decimal.Decimal { return p.basePrice }
func (p *Product) CreatedAt() time.Time      { return p.createdAt }

type Variation struct {
	id              uuid.UUID
	productID       uuid.UUID
	name            string
	additionalPrice decimal.Decimal
	sku             *string
}

func NewVariation(id, productID uuid.UUID, name string, additionalPrice decimal.Decimal, sku *string) (*Variation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	if additionalPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &Variation{
		id:              id,
		productID:       productID,
		name:            name,
		additionalPrice: additionalPrice,
		sku:             sku,
	}, nil
}

func ReconstructVariation(id, productID uuid.UUID, name string, additionalPrice decimal.Decimal, sku *string) *Variation {
	return &Variation{
		id:              id,
		productID:       productID,
		name:            name,
		additionalPrice: additionalPrice,
		sku:             sku,
	}
}

func (v *Variation) ID() uuid.UUID                    { return v.id }
func (v *Variation) ProductID() uuid.UUID             { return v.productID }
func (v *Variation) Name() string                     { return v.name }
func (v *Variation) AdditionalPrice() decimal.Decimal { return v.additionalPrice }
func (v *Variation) SKU() *string                     { return v.sku }

// Price is the effective unit price of the variation: product base plus addition.
func (v *Variation) Price(basePrice decimal.Decimal) decimal.Decimal {
	return basePrice.Add(v.additionalPrice)
}

// DisplayName is the snapshot name used for cart lines and order items.
func (v *Variation) DisplayName(productName string) string {
	return productName + " - " + v.name
}
