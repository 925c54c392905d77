package product_controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// ExportLineSheet godoc
// @Summary Export line sheet
// @Description Downloads the active catalog as a PDF line sheet grouped by department
// @Tags CMS - Products
// @Produce application/pdf
// @Security BearerAuth
// @Param includeInactive query bool false "Include inactive products"
// @Success 200 {file} file
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/export [get]
func ExportLineSheet(c *gin.Context) {
	products := services.GetCatalogService().List()
	if c.Query("includeInactive") != "true" {
		active := products[:0]
		for _, p := range products {
			if p.IsActive {
				active = append(active, p)
			}
		}
		products = active
	}

	now := time.Now().UTC()
	buf, err := services.GenerateLineSheetPDF(products, now)
	if err != nil {
		log.Printf("[product.export] failed to generate PDF: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate line sheet"))
		return
	}

	filename := fmt.Sprintf("line-sheet-%s.pdf", now.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
