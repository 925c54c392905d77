package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_category "github.com/developer2iverto/Dresscollections-sub000/controllers/ecommerce/category_controller"
	store_product "github.com/developer2iverto/Dresscollections-sub000/controllers/ecommerce/product_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// public, no auth
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)
		products.GET("/filters", store_product.GetProductFilters)
		products.GET("/:id", store_product.GetStorefrontProductByID)
	}

	store.GET("/categories", store_category.GetCategories)
	store.GET("/catalog/status", store_product.GetCatalogStatus)
}
