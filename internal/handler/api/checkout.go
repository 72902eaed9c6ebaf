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

type CheckoutHandler struct {
	checkoutCommands commands.CheckoutCommands
	addressCommands  commands.AddressCommands
}

func NewCheckoutHandler(checkoutCommands commands.CheckoutCommands, addressCommands commands.AddressCommands) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutCommands: checkoutCommands,
		addressCommands:  addressCommands,
	}
}

// @Summary Lookup address
// @Description Resolve a postal code and hold the result in the session
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.LookupAddressRequest true "Postal code"
// @Success 200 {object} resdto.AddressResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /address/lookup [post]
func (h *CheckoutHandler) LookupAddress(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.LookupAddressRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	address, err := h.addressCommands.Lookup(c.Request.Context(), sessionID, req.PostalCode)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCepNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Postal code not found",
			})
		case errors.Is(err, errs.ErrAddressLookupFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Address lookup is currently unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAddress(address))
}

// @Summary Finalize checkout
// @Description Convert the session cart into a persisted order
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Customer and address details"
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	orderID, err := h.checkoutCommands.Finalize(c.Request.Context(), sessionID, commands.FinalizeParams{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Number:        req.Number,
		Complement:    req.Complement,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmptyCart):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, errs.ErrIncompleteAddress):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Delivery address is incomplete",
			})
		case errors.Is(err, errs.ErrInvalidCustomerInfo):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid customer information",
			})
		case errors.Is(err, errs.ErrVariationRequired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "A cart line requires a variation selection",
			})
		case errors.Is(err, errs.ErrProductNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "A cart line references a product that no longer exists",
			})
		case errors.Is(err, errs.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Insufficient stock for one or more items",
			})
		case errors.Is(err, errs.ErrCouponNotFound),
			errors.Is(err, errs.ErrCouponInactive),
			errors.Is(err, errs.ErrCouponExpired),
			errors.Is(err, errs.ErrCouponUsageLimitReached),
			errors.Is(err, errs.ErrCouponBelowMinimum):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Applied coupon is no longer valid",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CheckoutResponse{OrderID: orderID})
}
