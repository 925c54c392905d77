package auth_controller

import (
	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/utils"
)

const authCookieMaxAge = 24 * 60 * 60

// issueSession signs a customer token, sets it as the auth_token cookie and
// returns the auth payload.
func issueSession(c *gin.Context, user *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	c.SetCookie("auth_token", token, authCookieMaxAge, "/", "", config.Get().IsProduction(), true)

	return &models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}, nil
}
