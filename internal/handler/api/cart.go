package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
	cartQueries  queries.CartQueries
}

func NewCartHandler(cartCommands commands.CartCommands, cartQueries queries.CartQueries) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
		cartQueries:  cartQueries,
	}
}

// @Summary View cart
// @Description Render the session cart with recomputed totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.cartQueries.View(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(view, false))
}

// @Summary Add cart item
// @Description Add a product (or variation) to the session cart; quantity is clamped to stock
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	adjusted, err := h.cartCommands.AddItem(c.Request.Context(), sessionID, req.ProductID, req.VariationID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	h.respondCartView(c, sessionID, adjusted)
}

// @Summary Update cart item
// @Description Set a cart line to the given quantity; zero removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param lineId path string true "Cart line ID"
// @Param request body reqdto.UpdateItemRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{lineId} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.UpdateItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	adjusted, err := h.cartCommands.UpdateItem(c.Request.Context(), sessionID, c.Param("lineId"), *req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	h.respondCartView(c, sessionID, adjusted)
}

// @Summary Remove cart item
// @Description Remove a line from the session cart
// @Tags cart
// @Produce json
// @Param lineId path string true "Cart line ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /cart/items/{lineId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.cartCommands.RemoveItem(c.Request.Context(), sessionID, c.Param("lineId")); err != nil {
		h.respondCartError(c, err)
		return
	}

	h.respondCartView(c, sessionID, false)
}

func (h *CartHandler) respondCartView(c *gin.Context, sessionID uuid.UUID, adjusted bool) {
	view, err := h.cartQueries.View(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view, adjusted))
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, errs.ErrVariationNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Variation not found",
		})
	case errors.Is(err, errs.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart line not found",
		})
	case errors.Is(err, errs.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be positive",
		})
	case errors.Is(err, errs.ErrVariationRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Product requires a variation selection",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
