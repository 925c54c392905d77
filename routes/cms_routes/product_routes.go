package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/controllers/cms/product_controller"
	"github.com/developer2iverto/Dresscollections-sub000/middleware"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	product.Use(middleware.AdminAuthMiddleware())
	product.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleProductManager))
	{
		product.GET("", product_controller.GetProducts)
		product.GET("/stats", product_controller.GetProductStats)
		product.GET("/low-stock", product_controller.GetLowStockProducts)
		product.GET("/export", product_controller.ExportLineSheet)
		product.GET("/:id", product_controller.GetProductByID)

		product.POST("", product_controller.CreateProduct)
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.PATCH("/:id/stock", product_controller.UpdateProductStock)
		product.POST("/:id/media", product_controller.UploadProductMedia)
		product.DELETE("/:id", product_controller.DeleteProduct)
	}
}
