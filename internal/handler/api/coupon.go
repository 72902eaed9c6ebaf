package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponCommands commands.CouponCommands
}

func NewCouponHandler(couponCommands commands.CouponCommands) *CouponHandler {
	return &CouponHandler{
		couponCommands: couponCommands,
	}
}

// @Summary Apply coupon
// @Description Validate a coupon code and apply it to the session cart
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ApplyCouponRequest true "Coupon code"
// @Success 200 {object} resdto.AppliedCouponResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/coupon [post]
func (h *CouponHandler) Apply(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ApplyCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	applied, err := h.couponCommands.Apply(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyCouponCode):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coupon code is required",
			})
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, errs.ErrCouponInactive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Coupon is not active",
			})
		case errors.Is(err, errs.ErrCouponExpired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Coupon has expired",
			})
		case errors.Is(err, errs.ErrCouponUsageLimitReached):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Coupon usage limit reached",
			})
		case errors.Is(err, errs.ErrCouponBelowMinimum):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppliedCoupon(applied))
}

// @Summary Remove coupon
// @Description Remove the applied coupon from the session cart
// @Tags coupons
// @Produce json
// @Success 204
// @Router /cart/coupon [delete]
func (h *CouponHandler) Remove(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.couponCommands.Remove(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
