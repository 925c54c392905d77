package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/controllers/ecommerce/user_controller/address_controller"
	"github.com/developer2iverto/Dresscollections-sub000/middleware"
)

func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())

	addresses := user.Group("/addresses")
	{
		addresses.GET("", address_controller.GetAddresses)
		addresses.POST("", address_controller.AddAddress)
		addresses.PATCH("/:id", address_controller.UpdateAddress)
		addresses.DELETE("/:id", address_controller.DeleteAddress)
		addresses.PATCH("/:id/default", address_controller.SetDefaultAddress)
	}
}
