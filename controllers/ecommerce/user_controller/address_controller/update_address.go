package address_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// UpdateAddress godoc
// @Summary Update address
// @Description Update specific fields of an address
// @Tags User - Addresses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Address ID"
// @Param address body models.UpdateAddressRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.AddressResponse} "Address updated successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Permission denied"
// @Failure 404 {object} models.ApiResponse "Address not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /user/addresses/{id} [patch]
func UpdateAddress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, err))
		return
	}

	updates := addressUpdates(req)
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	address := loadOwnedAddress(c, ctx, userID)
	if address == nil {
		return
	}

	if err := config.EcommerceGorm.WithContext(ctx).Model(address).Updates(updates).Error; err != nil {
		log.Printf("❌ Failed to update address: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update address"))
		return
	}

	log.Printf("✅ Address updated: %s", address.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Address updated successfully", address.ToResponse()))
}

func addressUpdates(req models.UpdateAddressRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			updates[column] = *v
		}
	}

	set("label", req.Label)
	set("type", req.Type)
	set("first_name", req.FirstName)
	set("last_name", req.LastName)
	set("street", req.Street)
	set("city", req.City)
	set("state", req.State)
	set("zip", req.Zip)
	set("country", req.Country)
	set("phone", req.Phone)
	return updates
}
