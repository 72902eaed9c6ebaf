package cart

import (
	"sort"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Line is one entry in the session cart. Name and unit price are
// snapshotted at add time; only the quantity is mutable.
type Line struct {
	ProductID   uuid.UUID       `json:"product_id"`
	VariationID *uuid.UUID      `json:"variation_id,omitempty"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// LineID derives the composite cart key for a (product, variation) pair.
// The nil-variation form uses the bare product id so the same product
// with different variations occupies distinct lines.
func LineID(productID uuid.UUID, variationID *uuid.UUID) string {
	if variationID == nil {
		return productID.String()
	}
	return productID.String() + ":" + variationID.String()
}

// Cart is the session-scoped mutable mapping of line id to line. It is
// a plain value owned by the session store and passed by reference into
// cart, coupon and checkout operations.
type Cart struct {
	Items map[string]Line `json:"items"`
}

func New() *Cart {
	return &Cart{Items: make(map[string]Line)}
}

// Upsert adds quantity for the given line, creating it if absent and
// summing if present. The resulting quantity is clamped to available
// stock; clamping is reported, not rejected.
func (c *Cart) Upsert(line Line, available int) (adjusted bool, err error) {
	if line.Quantity <= 0 {
		return false, errs.ErrInvalidQuantity
	}
	if c.Items == nil {
		c.Items = make(map[string]Line)
	}

	id := LineID(line.ProductID, line.VariationID)
	if existing, ok := c.Items[id]; ok {
		line.Quantity += existing.Quantity
	}

	if line.Quantity > available {
		line.Quantity = available
		adjusted = true
	}
	if line.Quantity <= 0 {
		delete(c.Items, id)
		return adjusted, nil
	}

	c.Items[id] = line
	return adjusted, nil
}

// SetQuantity updates a line to the given quantity, clamped to available
// stock. A quantity of zero or less removes the line.
func (c *Cart) SetQuantity(lineID string, quantity, available int) (adjusted bool, err error) {
	line, ok := c.Items[lineID]
	if !ok {
		return false, errs.ErrLineNotFound
	}

	if quantity <= 0 {
		delete(c.Items, lineID)
		return false, nil
	}

	if quantity > available {
		quantity = available
		adjusted = true
	}
	if quantity <= 0 {
		delete(c.Items, lineID)
		return adjusted, nil
	}

	line.Quantity = quantity
	c.Items[lineID] = line
	return adjusted, nil
}

func (c *Cart) Remove(lineID string) error {
	if _, ok := c.Items[lineID]; !ok {
		return errs.ErrLineNotFound
	}
	delete(c.Items, lineID)
	return nil
}

func (c *Cart) Line(lineID string) (Line, bool) {
	line, ok := c.Items[lineID]
	return line, ok
}

// Lines returns the cart lines in a stable order keyed by line id.
func (c *Cart) Lines() []Line {
	ids := make([]string, 0, len(c.Items))
	for id := range c.Items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	lines := make([]Line, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, c.Items[id])
	}
	return lines
}

func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.Items {
		subtotal = subtotal.Add(line.Subtotal())
	}
	return subtotal
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns an independent copy of the cart. Mutations on either
// side stay invisible to the other.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return New()
	}
	items := make(map[string]Line, len(c.Items))
	for id, line := range c.Items {
		if line.VariationID != nil {
			variationID := *line.VariationID
			line.VariationID = &variationID
		}
		items[id] = line
	}
	return &Cart{Items: items}
}

func (c *Cart) Clear() {
	c.Items = make(map[string]Line)
}
