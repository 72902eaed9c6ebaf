package response

import (
	"time"

	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductListResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"basePrice"`
	CreatedAt time.Time       `json:"createdAt"`
}

type VariationResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	AdditionalPrice decimal.Decimal `json:"additionalPrice"`
	SKU             *string         `json:"sku,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
}

type ProductResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	BasePrice   decimal.Decimal     `json:"basePrice"`
	Stock       int                 `json:"stock"`
	Variations  []VariationResponse `json:"variations"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func FromProductListItem(rm *queries.ProductListItem) *ProductListResponse {
	return &ProductListResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		BasePrice: rm.BasePrice,
		CreatedAt: rm.CreatedAt,
	}
}

func FromProductView(rm *queries.ProductView) *ProductResponse {
	variations := make([]VariationResponse, len(rm.Variations))
	for i, v := range rm.Variations {
		variations[i] = VariationResponse{
			ID:              v.ID,
			Name:            v.Name,
			AdditionalPrice: v.AdditionalPrice,
			SKU:             v.SKU,
			Price:           v.Price,
			Stock:           v.Stock,
		}
	}
	return &ProductResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Description: rm.Description,
		BasePrice:   rm.BasePrice,
		Stock:       rm.Stock,
		Variations:  variations,
		CreatedAt:   rm.CreatedAt,
	}
}
