//go:build unit

package cart_test

import (
	"testing"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(productID uuid.UUID, variationID *uuid.UUID, name, price string, qty int) cart.Line {
	return cart.Line{
		ProductID:   productID,
		VariationID: variationID,
		Name:        name,
		UnitPrice:   dec(price),
		Quantity:    qty,
	}
}

func TestLineID(t *testing.T) {
	productID := uuid.New()
	variationID := uuid.New()

	t.Run("base product uses the bare product id", func(t *testing.T) {
		assert.Equal(t, productID.String(), cart.LineID(productID, nil))
	})

	t.Run("variation is part of the key", func(t *testing.T) {
		got := cart.LineID(productID, &variationID)
		assert.Equal(t, productID.String()+":"+variationID.String(), got)
	})
}

func TestCartUpsert(t *testing.T) {
	productID := uuid.New()

	t.Run("adds a new line", func(t *testing.T) {
		c := cart.New()
		adjusted, err := c.Upsert(line(productID, nil, "Ceramic Mug", "25.00", 2), 10)
		require.NoError(t, err)
		assert.False(t, adjusted)
		assert.True(t, c.Subtotal().Equal(dec("50.00")))
	})

	t.Run("same line sums quantities", func(t *testing.T) {
		c := cart.New()
		_, err := c.Upsert(line(productID, nil, "Ceramic Mug", "25.00", 2), 10)
		require.NoError(t, err)
		_, err = c.Upsert(line(productID, nil, "Ceramic Mug", "25.00", 3), 10)
		require.NoError(t, err)

		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("sum beyond stock clamps and reports", func(t *testing.T) {
		c := cart.New()
		_, err := c.Upsert(line(productID, nil, "Ceramic Mug", "25.00", 4), 5)
		require.NoError(t, err)
		adjusted, err := c.Upsert(line(productID, nil, "Ceramic Mug", "25.00", 4), 5)
		require.NoError(t, err)

		assert.True(t, adjusted)
		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("zero stock leaves no line", func(t *testing.T) {
		c := cart.New()
		adjusted, err := c.Upsert(line(productID, nil, "Ceramic Mug", "25.00", 1), 0)
		require.NoError(t, err)
		assert.True(t, adjusted)
		assert.True(t, c.IsEmpty())
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		c := cart.New()
		_, err := c.Upsert(line(productID, nil, "Ceramic Mug", "25.00", 0), 10)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
	})

	t.Run("variations of one product occupy distinct lines", func(t *testing.T) {
		varA := uuid.New()
		varB := uuid.New()
		c := cart.New()
		_, err := c.Upsert(line(productID, &varA, "Shirt (S)", "30.00", 1), 10)
		require.NoError(t, err)
		_, err = c.Upsert(line(productID, &varB, "Shirt (M)", "30.00", 1), 10)
		require.NoError(t, err)

		assert.Len(t, c.Lines(), 2)
	})
}

func TestCartSetQuantity(t *testing.T) {
	productID := uuid.New()

	newCartWith := func(t *testing.T, qty, available int) (*cart.Cart, string) {
		t.Helper()
		c := cart.New()
		_, err := c.Upsert(line(productID, nil, "Ceramic Mug", "25.00", qty), available)
		require.NoError(t, err)
		return c, cart.LineID(productID, nil)
	}

	t.Run("replaces the quantity", func(t *testing.T) {
		c, id := newCartWith(t, 2, 10)
		adjusted, err := c.SetQuantity(id, 7, 10)
		require.NoError(t, err)
		assert.False(t, adjusted)

		got, ok := c.Line(id)
		require.True(t, ok)
		assert.Equal(t, 7, got.Quantity)
	})

	t.Run("clamps to available stock", func(t *testing.T) {
		c, id := newCartWith(t, 2, 10)
		adjusted, err := c.SetQuantity(id, 15, 10)
		require.NoError(t, err)
		assert.True(t, adjusted)

		got, _ := c.Line(id)
		assert.Equal(t, 10, got.Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c, id := newCartWith(t, 2, 10)
		adjusted, err := c.SetQuantity(id, 0, 10)
		require.NoError(t, err)
		assert.False(t, adjusted)
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown line", func(t *testing.T) {
		c := cart.New()
		_, err := c.SetQuantity("missing", 1, 10)
		assert.ErrorIs(t, err, errs.ErrLineNotFound)
	})
}

func TestCartRemove(t *testing.T) {
	productID := uuid.New()

	t.Run("removes an existing line", func(t *testing.T) {
		c := cart.New()
		_, err := c.Upsert(line(productID, nil, "Ceramic Mug", "25.00", 1), 10)
		require.NoError(t, err)

		require.NoError(t, c.Remove(cart.LineID(productID, nil)))
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown line", func(t *testing.T) {
		c := cart.New()
		assert.ErrorIs(t, c.Remove("missing"), errs.ErrLineNotFound)
	})
}

func TestCartLines(t *testing.T) {
	t.Run("stable order across reads", func(t *testing.T) {
		c := cart.New()
		for range 5 {
			_, err := c.Upsert(line(uuid.New(), nil, "Item", "1.00", 1), 10)
			require.NoError(t, err)
		}

		first := c.Lines()
		second := c.Lines()
		assert.Equal(t, first, second)
	})
}

func TestCartSubtotal(t *testing.T) {
	c := cart.New()
	_, err := c.Upsert(line(uuid.New(), nil, "Ceramic Mug", "25.00", 2), 10)
	require.NoError(t, err)
	_, err = c.Upsert(line(uuid.New(), nil, "Notebook", "12.50", 3), 10)
	require.NoError(t, err)

	assert.True(t, c.Subtotal().Equal(dec("87.50")))
}

func TestCartClone(t *testing.T) {
	productID := uuid.New()
	variationID := uuid.New()

	c := cart.New()
	_, err := c.Upsert(line(productID, &variationID, "Ceramic Mug - Blue", "27.50", 2), 10)
	require.NoError(t, err)

	clone := c.Clone()
	require.Equal(t, c.Lines(), clone.Lines())

	// The copies share nothing mutable
	_, err = clone.Upsert(line(productID, &variationID, "Ceramic Mug - Blue", "27.50", 3), 10)
	require.NoError(t, err)
	clone.Clear()

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, variationID, *lines[0].VariationID)
}
