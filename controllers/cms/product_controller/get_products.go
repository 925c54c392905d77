package product_controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/models"
	"github.com/developer2iverto/Dresscollections-sub000/services"
)

// GetProducts godoc
// @Summary List products
// @Description Every product, active or not, in catalog order with optional search and department/category/status filters
// @Tags CMS - Products
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term"
// @Param mainCategory query string false "Department"
// @Param category query string false "Subcategory"
// @Param status query string false "active or inactive"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.Product}
// @Failure 401 {object} models.ApiResponse
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	mainCategory := strings.TrimSpace(c.Query("mainCategory"))
	category := strings.TrimSpace(c.Query("category"))
	status := strings.ToLower(strings.TrimSpace(c.Query("status")))

	products := []models.Product{}
	for _, p := range services.GetCatalogService().List() {
		if search != "" && !services.MatchesSearch(p, search) {
			continue
		}
		if mainCategory != "" && p.MainCategory != mainCategory {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if (status == "active" && !p.IsActive) || (status == "inactive" && p.IsActive) {
			continue
		}
		products = append(products, p)
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	total := len(products)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products fetched successfully", products[start:end], &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}))
}
