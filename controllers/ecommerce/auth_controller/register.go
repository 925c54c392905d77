package auth_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// Register godoc
// @Summary Register a customer
// @Description Creates a customer account with email and password and signs them in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account details"
// @Success 201 {object} models.ApiResponse{data=models.AuthResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	err := config.EcommerceGorm.WithContext(ctx).Select("id").Where("email = ?", email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists"))
		return
	}
	if err != gorm.ErrRecordNotFound {
		log.Printf("[auth.register] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		log.Printf("[auth.register] hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	user := models.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Phone:        req.Phone,
	}
	if err := config.EcommerceGorm.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth.register] create failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	session, err := issueSession(c, &user)
	if err != nil {
		log.Printf("[auth.register] token failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to sign in"))
		return
	}

	log.Printf("[auth.register] ✅ new customer %s", user.ID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", session))
}
