package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/controllers/cms/catalog_controller"
	"github.com/developer2iverto/Dresscollections-sub000/middleware"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func SetupCatalogRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	catalog.Use(middleware.AdminAuthMiddleware())
	catalog.Use(middleware.RequireRoles(models.RoleAdmin))
	{
		catalog.POST("/reload", catalog_controller.ReloadCatalog)
		catalog.POST("/backup", catalog_controller.BackupCatalog)
	}
}
