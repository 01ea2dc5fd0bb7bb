package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"fashion-store/catalog"
	"fashion-store/config"
	"fashion-store/controllers"
	"fashion-store/middleware"
	"fashion-store/repositories"
	"fashion-store/routes"
	"fashion-store/services"
)

func main() {
	cfg := config.Load()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database setup failed: %v", err)
	}
	defer db.Close()

	cache := config.ConnectRedis(cfg)
	if cache != nil {
		defer cache.Close()
	}

	store, err := catalog.NewStore(cfg.CatalogVariants)
	if err != nil {
		log.Fatalf("Catalog generation failed: %v", err)
	}
	log.Printf("Catalog generated: %d products", len(store.All()))

	userRepo := repositories.NewUserRepository(db)
	cartRepo := repositories.NewCartRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	cartService := services.NewCartService(cartRepo, wishlistRepo, store)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Catalog:  controllers.NewCatalogController(store, cache),
		Cart:     controllers.NewCartController(cartService),
		Wishlist: controllers.NewWishlistController(cartService),
	}, cfg.JWTSecret)

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
