package cms_routes

import (
	"github.com/gin-gonic/gin"

	admin_auth_controller "github.com/developer2iverto/Dresscollections-sub000/controllers/cms/admin_controller/auth"
	"github.com/developer2iverto/Dresscollections-sub000/middleware"
)

// SetupAdminRoutes registers the admin auth routes under /admin.
func SetupAdminRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")

	admin.POST("/login", admin_auth_controller.AdminLogin)
	admin.POST("/logout", admin_auth_controller.AdminLogout)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuthMiddleware())
	{
		protected.GET("/me", admin_auth_controller.GetAdminMe)
	}
}
