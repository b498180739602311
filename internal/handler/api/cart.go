package api

import (
	"errors"
	"net/http"

	reqdto "masterbikes-api/internal/handler/dto/request"
	resdto "masterbikes-api/internal/handler/dto/response"
	"masterbikes-api/internal/pkg/errs"
	"masterbikes-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartCommands commands.CartCommands
}

func NewCartHandler(cartCommands commands.CartCommands) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
	}
}

// @Summary Get or create cart
// @Description Return the customer's active cart, creating an empty one if none exists
// @Tags cart
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CartResponse
// @Router /cart/{id} [get]
func (h *CartHandler) GetOrCreateCart(c *gin.Context) {
	customerID := c.Param("id")

	cartView, err := h.cartCommands.GetOrCreate(c.Request.Context(), customerID)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(cartView))
}

// @Summary Add cart item
// @Description Add a product to the customer's active cart, replacing any existing line for the same product
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body reqdto.AddCartItemRequest true "Item to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /cart/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	customerID := c.Param("id")

	var req reqdto.AddCartItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cartView, err := h.cartCommands.AddItem(c.Request.Context(), customerID, req.ProductID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(cartView))
}

// @Summary Update cart item quantity
// @Description Change the quantity of a product already present in the active cart
// @Tags cart
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param productId path string true "Product ID"
// @Param request body reqdto.UpdateCartItemQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /cart/{id}/items/{productId} [put]
func (h *CartHandler) UpdateItemQuantity(c *gin.Context) {
	customerID := c.Param("id")
	productID := c.Param("productId")

	var req reqdto.UpdateCartItemQuantityRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cartView, err := h.cartCommands.UpdateQuantity(c.Request.Context(), customerID, productID, req.Quantity)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(cartView))
}

// @Summary Remove cart item
// @Description Remove a product from the cart; removing an absent product succeeds without change
// @Tags cart
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path string true "Product ID"
// @Param customerId query string true "Customer ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /cart/{id}/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart ID",
		})
		return
	}
	productID := c.Param("productId")

	customerID := c.Query("customerId")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "customerId query parameter is required",
		})
		return
	}

	cartView, err := h.cartCommands.RemoveItem(c.Request.Context(), cartID, customerID, productID)
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartView(cartView))
}

// @Summary Abandon cart
// @Description Retire the cart so a later request starts a fresh one
// @Tags cart
// @Param id path string true "Cart ID"
// @Param customerId query string true "Customer ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /cart/{id} [delete]
func (h *CartHandler) AbandonCart(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cart ID",
		})
		return
	}

	customerID := c.Query("customerId")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "customerId query parameter is required",
		})
		return
	}

	if err := h.cartCommands.Abandon(c.Request.Context(), cartID, customerID); err != nil {
		h.respondCartError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be greater than zero",
		})
	case errors.Is(err, errs.ErrCartNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Cart not found",
		})
	case errors.Is(err, errs.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, errs.ErrProductNotInCart):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product is not in the cart",
		})
	case errors.Is(err, errs.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient stock for requested quantity",
		})
	case errors.Is(err, errs.ErrInventoryUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Inventory service is unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
