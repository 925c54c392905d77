package admin_auth_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Clears the admin_token cookie
// @Tags Admin - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /admin/logout [post]
func AdminLogout(c *gin.Context) {
	c.SetCookie("admin_token", "", -1, "/", "", config.Get().IsProduction(), true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
