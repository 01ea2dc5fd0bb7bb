package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fashion-store/middleware"
	"fashion-store/models"
	"fashion-store/services"
)

type CartController struct {
	cartService *services.CartService
}

func NewCartController(cartService *services.CartService) *CartController {
	return &CartController{cartService: cartService}
}

// @Summary Get cart
// @Description Get the current user's cart with totals; anonymous users get an empty cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := middleware.UserID(c)

	items, err := ctrl.cartService.FetchCartItems(c.Request.Context(), userID)
	if err != nil {
		log.Println("Error fetching cart items:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch cart",
		})
		return
	}

	respondCart(c, "Cart retrieved", items)
}

// @Summary Add to cart
// @Description Upsert a cart line item keyed by product and selected variant
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddToCartRequest true "Add to cart"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	items, err := ctrl.cartService.AddToCart(c.Request.Context(), middleware.UserID(c),
		req.ProductID, req.Quantity, req.SelectedColor, req.SelectedSize)
	if err != nil {
		respondCartError(c, err, "Failed to add item to cart")
		return
	}

	respondCart(c, "Item added to cart", items)
}

// @Summary Update cart quantity
// @Description Set the quantity of one cart line item; quantities below 1 are rejected
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item id"
// @Param request body models.UpdateCartQuantityRequest true "New quantity"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateCartQuantity(c *gin.Context) {
	var req models.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	items, err := ctrl.cartService.UpdateCartQuantity(c.Request.Context(), middleware.UserID(c),
		c.Param("id"), req.Quantity)
	if err != nil {
		respondCartError(c, err, "Failed to update quantity")
		return
	}

	respondCart(c, "Quantity updated", items)
}

// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item id"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	items, err := ctrl.cartService.RemoveFromCart(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondCartError(c, err, "Failed to remove item from cart")
		return
	}

	respondCart(c, "Item removed from cart", items)
}

// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	items, err := ctrl.cartService.ClearCart(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondCartError(c, err, "Failed to clear cart")
		return
	}

	respondCart(c, "Cart cleared", items)
}

// @Summary Move cart item to wishlist
// @Description Add the item's product to the wishlist, then remove the cart row
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart item id"
// @Success 200 {object} models.Response
// @Router /cart/items/{id}/move-to-wishlist [post]
func (ctrl *CartController) MoveToWishlist(c *gin.Context) {
	cartItems, wishlistItems, err := ctrl.cartService.MoveToWishlist(c.Request.Context(),
		middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondCartError(c, err, "Failed to move item to wishlist")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item moved to wishlist",
		Data: gin.H{
			"cart_items":     cartItems,
			"wishlist_items": wishlistItems,
			"summary":        services.Summary(cartItems),
		},
	})
}

func respondCart(c *gin.Context, message string, items []models.CartItem) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data: gin.H{
			"items":   items,
			"summary": services.Summary(items),
		},
	})
}

// respondCartError translates service errors into the notice the user
// sees. Unexpected failures are logged and reported generically.
func respondCartError(c *gin.Context, err error, genericMessage string) {
	switch {
	case errors.Is(err, services.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: "Please login to manage your cart and wishlist",
		})
	case errors.Is(err, services.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Quantity must be at least 1",
		})
	case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	default:
		log.Println(genericMessage+":", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: genericMessage,
		})
	}
}
