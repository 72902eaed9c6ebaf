//go:build unit

package catalog_test

import (
	"testing"

	"storefront/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewProduct(t *testing.T) {
	t.Run("valid product normalizes whitespace", func(t *testing.T) {
		p, err := catalog.NewProduct(uuid.New(), "  Ceramic Mug  ", "  hand thrown  ", dec("25.00"))
		require.NoError(t, err)
		assert.Equal(t, "Ceramic Mug", p.Name())
		assert.Equal(t, "hand thrown", p.Description())
		assert.True(t, p.BasePrice().Equal(dec("25.00")))
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := catalog.NewProduct(uuid.New(), "Freebie", "", decimal.Zero)
		require.NoError(t, err)
	})

	tests := []struct {
		name        string
		productName string
		basePrice   decimal.Decimal
		errIs       error
	}{
		{name: "empty name", productName: "", basePrice: dec("25.00"), errIs: catalog.ErrEmptyProductName},
		{name: "whitespace-only name", productName: "   ", basePrice: dec("25.00"), errIs: catalog.ErrEmptyProductName},
		{name: "negative price", productName: "Ceramic Mug", basePrice: dec("-0.01"), errIs: catalog.ErrNegativePrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.NewProduct(uuid.New(), tt.productName, "", tt.basePrice)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewVariation(t *testing.T) {
	productID := uuid.New()

	t.Run("valid variation", func(t *testing.T) {
		sku := "MUG-BLUE"
		v, err := catalog.NewVariation(uuid.New(), productID, "Blue", dec("2.50"), &sku)
		require.NoError(t, err)
		assert.Equal(t, "Blue", v.Name())
		assert.Equal(t, productID, v.ProductID())
		require.NotNil(t, v.SKU())
		assert.Equal(t, "MUG-BLUE", *v.SKU())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := catalog.NewVariation(uuid.New(), productID, " ", dec("2.50"), nil)
		assert.ErrorIs(t, err, catalog.ErrEmptyProductName)
	})

	t.Run("negative additional price", func(t *testing.T) {
		_, err := catalog.NewVariation(uuid.New(), productID, "Blue", dec("-2.50"), nil)
		assert.ErrorIs(t, err, catalog.ErrNegativePrice)
	})
}

func TestVariationPricing(t *testing.T) {
	v := catalog.ReconstructVariation(uuid.New(), uuid.New(), "Blue", dec("2.50"), nil)

	assert.True(t, v.Price(dec("25.00")).Equal(dec("27.50")))
	assert.Equal(t, "Ceramic Mug - Blue", v.DisplayName("Ceramic Mug"))
}

func TestStockLine(t *testing.T) {
	productID := uuid.New()
	variationID := uuid.New()

	assert.False(t, catalog.StockLine{ProductID: productID, Quantity: 3}.IsVariationLine())
	assert.True(t, catalog.StockLine{ProductID: productID, VariationID: &variationID, Quantity: 3}.IsVariationLine())
}
