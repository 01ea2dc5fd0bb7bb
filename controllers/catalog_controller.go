package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"fashion-store/catalog"
	"fashion-store/models"
)

const catalogCacheTTL = 5 * time.Minute

type CatalogController struct {
	store *catalog.Store
	cache *redis.Client
}

func NewCatalogController(store *catalog.Store, cache *redis.Client) *CatalogController {
	return &CatalogController{store: store, cache: cache}
}

// @Summary Get all categories
// @Description Get the full category taxonomy
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *CatalogController) GetAllCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved",
		Data:    ctrl.store.Categories(),
	})
}

// @Summary List products
// @Description List products, optionally scoped to a category or subcategory
// @Tags Catalog
// @Produce json
// @Param category query string false "Category id"
// @Param subcategory query string false "Subcategory id"
// @Success 200 {object} models.Response
// @Router /products [get]
func (ctrl *CatalogController) GetAllProducts(c *gin.Context) {
	categoryID := c.Query("category")
	subcategoryID := c.Query("subcategory")

	var products []models.Product
	switch {
	case subcategoryID != "":
		products = ctrl.store.BySubcategory(subcategoryID)
	case categoryID != "":
		products = ctrl.store.ByCategory(categoryID)
	default:
		products = ctrl.store.All()
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Products retrieved",
		Data: gin.H{
			"products": products,
			"total":    len(products),
		},
	})
}

// @Summary Filter and sort products
// @Description Filter the catalog by search text, brand, color, rating and price range, then sort
// @Tags Catalog
// @Produce json
// @Param category query string false "Category id"
// @Param subcategory query string false "Subcategory id"
// @Param search query string false "Free-text search over name, description, brand and tags"
// @Param brands query string false "Comma-separated brand allow-list"
// @Param colors query string false "Comma-separated color allow-list"
// @Param min_rating query number false "Minimum rating"
// @Param min_price query number false "Minimum price, inclusive"
// @Param max_price query number false "Maximum price, inclusive"
// @Param sort query string false "Sort key" Enums(price-low, price-high, rating, newest, featured, relevance)
// @Success 200 {object} models.Response
// @Router /products/filter [get]
func (ctrl *CatalogController) FilterProducts(c *gin.Context) {
	cacheKey := "products_filter_" + c.Request.URL.RawQuery
	ctx := context.Background()

	if ctrl.cache != nil {
		if cached, err := ctrl.cache.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			return
		}
	}

	filter := catalog.Filter{
		CategoryID:    strings.TrimSpace(c.Query("category")),
		SubcategoryID: strings.TrimSpace(c.Query("subcategory")),
		Query:         strings.TrimSpace(c.Query("search")),
		Brands:        splitParam(c.Query("brands")),
		Colors:        splitParam(c.Query("colors")),
	}
	if v, err := strconv.ParseFloat(c.Query("min_rating"), 64); err == nil {
		filter.MinRating = v
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		filter.MaxPrice = &v
	}

	sortKey := catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortFeatured)))
	products := catalog.Apply(ctrl.store.All(), filter, sortKey)

	response := models.Response{
		Success: true,
		Message: "Products retrieved",
		Data: gin.H{
			"products": products,
			"total":    len(products),
			"facets": gin.H{
				"brands": catalog.Brands(products),
				"colors": catalog.Colors(products),
			},
		},
	}

	if ctrl.cache != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			ctrl.cache.Set(ctx, cacheKey, string(jsonData), catalogCacheTTL)
		}
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get product detail
// @Description Get one product with related products from the same subcategory
// @Tags Catalog
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product := ctrl.store.ByID(id)
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: fmt.Sprintf("Product %s not found", id),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved",
		Data: gin.H{
			"product": product,
			"related": ctrl.store.Related(id, 4),
		},
	})
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
