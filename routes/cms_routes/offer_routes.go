package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/controllers/cms/offer_controller"
	"github.com/developer2iverto/Dresscollections-sub000/middleware"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

func SetupOfferRoutes(rg *gin.RouterGroup) {
	offers := rg.Group("/offers")
	offers.Use(middleware.AdminAuthMiddleware())
	offers.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleMarketingManager))
	{
		offers.GET("/active", offer_controller.GetActiveOffer)
		offers.POST("/apply", offer_controller.ApplyOffer)
		offers.POST("/reset", offer_controller.ResetOffers)
	}
}
