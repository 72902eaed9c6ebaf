package catalog

import (
	"github.com/google/uuid"
)

// StockLine is the smallest unit of trackable inventory: a product sold
// as-is (nil variation) or one specific variation of it.
type StockLine struct {
	ProductID   uuid.UUID
	VariationID *uuid.UUID
	Quantity    int
}

func (s StockLine) IsVariationLine() bool {
	return s.VariationID != nil
}
