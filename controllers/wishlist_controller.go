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

type WishlistController struct {
	cartService *services.CartService
}

func NewWishlistController(cartService *services.CartService) *WishlistController {
	return &WishlistController{cartService: cartService}
}

// @Summary Get wishlist
// @Description Get the current user's wishlist; anonymous users get an empty list
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Response
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	items, err := ctrl.cartService.FetchWishlistItems(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		log.Println("Error fetching wishlist items:", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to fetch wishlist",
		})
		return
	}

	respondWishlist(c, "Wishlist retrieved", items)
}

// @Summary Add to wishlist
// @Description Insert a wishlist entry; adding a product twice is reported as already-in-wishlist, not an error
// @Tags Wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AddToWishlistRequest true "Add to wishlist"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /wishlist/items [post]
func (ctrl *WishlistController) AddToWishlist(c *gin.Context) {
	var req models.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	items, err := ctrl.cartService.AddToWishlist(c.Request.Context(), middleware.UserID(c), req.ProductID)
	if errors.Is(err, services.ErrAlreadyInWishlist) {
		// Informational, not a failure: the wishlist is unchanged.
		respondWishlist(c, "This item is already in your wishlist", items)
		return
	}
	if err != nil {
		respondCartError(c, err, "Failed to add item to wishlist")
		return
	}

	respondWishlist(c, "Item added to wishlist", items)
}

// @Summary Remove from wishlist
// @Tags Wishlist
// @Produce json
// @Security BearerAuth
// @Param id path string true "Wishlist item id"
// @Success 200 {object} models.Response
// @Router /wishlist/items/{id} [delete]
func (ctrl *WishlistController) RemoveFromWishlist(c *gin.Context) {
	items, err := ctrl.cartService.RemoveFromWishlist(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		respondCartError(c, err, "Failed to remove item from wishlist")
		return
	}

	respondWishlist(c, "Item removed from wishlist", items)
}

func respondWishlist(c *gin.Context, message string, items []models.WishlistItem) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: message,
		Data: gin.H{
			"items": items,
			"total": len(items),
		},
	})
}
