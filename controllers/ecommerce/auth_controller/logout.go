package auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// Logout godoc
// @Summary Logout user
// @Description Clears the auth_token cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", "", config.Get().IsProduction(), true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
