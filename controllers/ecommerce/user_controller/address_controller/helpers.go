package address_controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/middleware"
	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// currentUserID writes a 401 and returns false when the caller is not a
// signed-in customer.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid user ID"))
		return uuid.Nil, false
	}
	return userID, true
}

// loadOwnedAddress finds an active address of userID by the :id path param.
// It writes the error response itself and returns nil on failure.
func loadOwnedAddress(c *gin.Context, ctx context.Context, userID uuid.UUID) *models.Address {
	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid address ID"))
		return nil
	}

	var address models.Address
	if err := config.EcommerceGorm.WithContext(ctx).
		Where("id = ? AND status = ?", addressID, "active").
		First(&address).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Address not found"))
		return nil
	}

	if address.UserID != userID {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "You don't have permission to modify this address"))
		return nil
	}
	return &address
}
