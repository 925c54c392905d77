package product_controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

const maxImagesPerUpload = 8

var cloudinaryService *services.CloudinaryService

func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	var err error
	cloudinaryService, err = services.NewCloudinaryService(cloudName, apiKey, apiSecret)
	return err
}

// UploadProductMedia godoc
// @Summary Upload product images
// @Description Uploads images to Cloudinary and appends their URLs to the product
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param images formData file true "Image files (repeatable)"
// @Success 200 {object} models.ApiResponse{data=models.Product}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/products/{id}/media [post]
func UploadProductMedia(c *gin.Context) {
	if cloudinaryService == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Media uploads are not configured"))
		return
	}

	catalog := services.GetCatalogService()
	id := c.Param("id")
	product, ok := catalog.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 || len(files) > maxImagesPerUpload {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Send between 1 and 8 images"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer cancel()

	start := time.Now()
	urls, err := cloudinaryService.UploadMultipleImages(ctx, files, services.ProductMediaFolder(id))
	if err != nil {
		log.Printf("[product.media] upload failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to upload images"))
		return
	}
	log.Printf("[product.media] ⏱️ uploaded %d images in %v", len(urls), time.Since(start))

	images := append(product.Images, urls...)
	updated, ok := catalog.Update(ctx, id, models.ProductPatch{Images: &images})
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", updated))
}
