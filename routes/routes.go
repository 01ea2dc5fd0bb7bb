package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"fashion-store/controllers"
	"fashion-store/middleware"
)

type Controllers struct {
	Auth     *controllers.AuthController
	Catalog  *controllers.CatalogController
	Cart     *controllers.CartController
	Wishlist *controllers.WishlistController
}

func SetupRoutes(router *gin.Engine, ctrl Controllers, jwtSecret string) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", ctrl.Auth.Register)
	router.POST("/auth/login", ctrl.Auth.Login)

	router.GET("/categories", ctrl.Catalog.GetAllCategories)
	router.GET("/products", ctrl.Catalog.GetAllProducts)
	router.GET("/products/filter", ctrl.Catalog.FilterProducts)
	router.GET("/products/:id", ctrl.Catalog.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(jwtSecret))
	{
		auth.GET("/auth/profile", ctrl.Auth.GetProfile)
		auth.PATCH("/auth/profile", ctrl.Auth.UpdateProfile)
		auth.POST("/auth/change-password", ctrl.Auth.ChangePassword)
	}

	// Cart and wishlist accept anonymous requests: reads answer with
	// empty collections, mutations get the must-authenticate notice from
	// the service.
	shop := router.Group("/")
	shop.Use(middleware.OptionalAuthMiddleware(jwtSecret))
	{
		shop.GET("/cart", ctrl.Cart.GetCart)
		shop.DELETE("/cart", ctrl.Cart.ClearCart)
		shop.POST("/cart/items", ctrl.Cart.AddToCart)
		shop.PATCH("/cart/items/:id", ctrl.Cart.UpdateCartQuantity)
		shop.DELETE("/cart/items/:id", ctrl.Cart.RemoveFromCart)
		shop.POST("/cart/items/:id/move-to-wishlist", ctrl.Cart.MoveToWishlist)

		shop.GET("/wishlist", ctrl.Wishlist.GetWishlist)
		shop.POST("/wishlist/items", ctrl.Wishlist.AddToWishlist)
		shop.DELETE("/wishlist/items/:id", ctrl.Wishlist.RemoveFromWishlist)
	}
}
