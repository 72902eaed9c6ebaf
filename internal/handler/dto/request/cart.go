package request

import (
	"github.com/google/uuid"
)

type AddItemRequest struct {
	ProductID   uuid.UUID  `json:"product_id" binding:"required"`
	VariationID *uuid.UUID `json:"variation_id,omitempty"`
	Quantity    int        `json:"quantity" binding:"required,gt=0"`
}

// UpdateItemRequest takes a pointer so an explicit zero survives
// binding; zero quantity removes the line.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
