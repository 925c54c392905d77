package address_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// GetAddresses godoc
// @Summary Get user addresses
// @Description Active addresses of the authenticated user, default first
// @Tags User - Addresses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.AddressResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/addresses [get]
func GetAddresses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var addresses []models.Address
	if err := config.EcommerceGorm.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "active").
		Order("is_default DESC, created_at ASC").
		Find(&addresses).Error; err != nil {
		log.Printf("❌ Failed to fetch addresses: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch addresses"))
		return
	}

	out := make([]models.AddressResponse, 0, len(addresses))
	for i := range addresses {
		out = append(out, addresses[i].ToResponse())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Addresses fetched successfully", out))
}
