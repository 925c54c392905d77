package catalog_controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/config"
	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
	"github.com/developer2iverto/Dresscollections-sub000/stores"
)

var archive *stores.S3CatalogArchive

// InitArchive enables POST /admin/catalog/backup.
func InitArchive(a *stores.S3CatalogArchive) {
	archive = a
}

// BackupCatalog godoc
// @Summary Back up the catalog
// @Description Uploads the in-memory catalog as a JSON snapshot to the backup bucket
// @Tags CMS - Catalog
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.ApiResponse{data=object{key=string}}
// @Failure 503 {object} models.ApiResponse "Backups not configured"
// @Router /admin/catalog/backup [post]
func BackupCatalog(c *gin.Context) {
	if archive == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog backups are not configured"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	catalog := services.GetCatalogService()
	snap := models.CatalogSnapshot{Products: catalog.List(), UpdatedAt: time.Now().UTC()}
	if remote, err := catalog.RemoteSnapshot(ctx); err == nil {
		snap.Version = remote.Version
	}

	key, err := archive.Archive(ctx, snap)
	if err != nil {
		log.Printf("[catalog.backup] failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to back up catalog"))
		return
	}

	log.Printf("[catalog.backup] ✅ %d products archived to %s", len(snap.Products), key)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Catalog backed up", map[string]string{"key": key}))
}
