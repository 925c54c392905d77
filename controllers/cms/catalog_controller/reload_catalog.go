package catalog_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// ReloadCatalog godoc
// @Summary Reload the catalog
// @Description Re-runs hydration: remote store, then local mirror, then the seed catalog
// @Tags CMS - Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.CatalogStatus}
// @Failure 503 {object} models.ApiResponse "Both stores failed; the seed catalog is served"
// @Router /admin/catalog/reload [post]
func ReloadCatalog(c *gin.Context) {
	ctx, cancel := config.WithCustomTimeout(config.Get().RemoteSyncTimeout)
	defer cancel()

	catalog := services.GetCatalogService()
	err := catalog.Hydrate(ctx)
	if errors.Is(err, services.ErrCatalogUnavailable) {
		resp := models.ErrorResponse(c, err.Error())
		resp.Data = catalog.Status()
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog reloaded", catalog.Status()))
}
