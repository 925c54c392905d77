package address_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// DeleteAddress godoc
// @Summary Delete address
// @Description Soft-deletes an address. When it was the default, the oldest remaining address takes over.
// @Tags User - Addresses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Success 200 {object} models.ApiResponse "Address deleted successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/addresses/{id} [delete]
func DeleteAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	address := loadOwnedAddress(c, ctx, userID)
	if address == nil {
		return
	}

	wasDefault := address.IsDefault
	err := config.EcommerceGorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(address).
			Updates(map[string]interface{}{"status": "deleted", "is_default": false}).Error; err != nil {
			return err
		}
		if !wasDefault {
			return nil
		}

		var next models.Address
		err := tx.Where("user_id = ? AND status = ? AND id != ?", userID, "active", address.ID).
			Order("created_at ASC").
			First(&next).Error
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		log.Printf("✅ New default address set: %s (oldest) for user: %s", next.ID, userID)
		return tx.Model(&next).Update("is_default", true).Error
	})
	if err != nil {
		log.Printf("❌ Failed to delete address: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete address"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address deleted successfully", map[string]string{"id": address.ID.String()}))
}
