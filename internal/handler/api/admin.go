package api

import (
	"errors"
	"net/http"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/coupon"
	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminCommands commands.AdminCommands
	couponQueries queries.CouponQueries
}

func NewAdminHandler(adminCommands commands.AdminCommands, couponQueries queries.CouponQueries) *AdminHandler {
	return &AdminHandler{
		adminCommands: adminCommands,
		couponQueries: couponQueries,
	}
}

// @Summary Create coupon
// @Description Create a new coupon code
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/coupons [post]
func (h *AdminHandler) CreateCoupon(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.adminCommands.CreateCoupon(c.Request.Context(), commands.CreateCouponParams{
		Code:        req.Code,
		Kind:        req.Kind,
		Value:       req.Value,
		MinSubtotal: req.MinSubtotal,
		ExpiresAt:   req.ExpiresAt,
		MaxUses:     req.MaxUses,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateCouponCode):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon code already exists",
			})
		case errors.Is(err, coupon.ErrInvalidCouponCode),
			errors.Is(err, coupon.ErrInvalidDiscountKind),
			errors.Is(err, coupon.ErrInvalidDiscountValue),
			errors.Is(err, coupon.ErrInvalidDiscountPercent):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary List coupons
// @Description List all coupons with their usage counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CouponResponse
// @Router /admin/coupons [get]
func (h *AdminHandler) ListCoupons(c *gin.Context) {
	coupons, err := h.couponQueries.ListCoupons(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CouponResponse, len(coupons))
	for i := range coupons {
		response[i] = resdto.FromCouponListItem(&coupons[i])
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Set coupon active flag
// @Description Activate or deactivate a coupon
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.SetCouponActiveRequest true "Active flag"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/coupons/{id} [put]
func (h *AdminHandler) SetCouponActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon ID format",
		})
		return
	}

	var req reqdto.SetCouponActiveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminCommands.SetCouponActive(c.Request.Context(), id, *req.Active); err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create product
// @Description Create a product with optional variations and initial stock
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product definition"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/products [post]
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	variations := make([]commands.CreateVariationParams, len(req.Variations))
	for i, v := range req.Variations {
		variations[i] = commands.CreateVariationParams{
			Name:            v.Name,
			AdditionalPrice: v.AdditionalPrice,
			SKU:             v.SKU,
			Stock:           v.Stock,
		}
	}

	id, err := h.adminCommands.CreateProduct(c.Request.Context(), commands.CreateProductParams{
		Name:        req.Name,
		Description: req.Description,
		BasePrice:   req.BasePrice,
		Stock:       req.Stock,
		Variations:  variations,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrEmptyProductName),
			errors.Is(err, catalog.ErrNegativePrice):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Set stock
// @Description Set the absolute stock quantity for a product or variation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetStockRequest true "Stock line"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/stock [put]
func (h *AdminHandler) SetStock(c *gin.Context) {
	var req reqdto.SetStockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminCommands.SetStock(c.Request.Context(), req.ProductID, req.VariationID, *req.Quantity); err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Quantity must not be negative",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
