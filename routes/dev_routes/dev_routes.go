package dev_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/controllers/dev_controller"
)

// SetupDevRoutes registers the shared dev catalog endpoints. They carry no
// auth and must only be enabled outside production.
func SetupDevRoutes(router *gin.RouterGroup) {
	dev := router.Group("/dev")
	{
		dev.GET("/catalog", dev_controller.GetDevCatalog)
		dev.PUT("/catalog", dev_controller.PutDevCatalog)
	}
}
