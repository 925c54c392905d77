package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}
	return page, limit
}

// paginate slices one page of products and builds its meta.
func paginate(products []models.Product, page, limit int) ([]models.StorefrontProductResponse, *models.Pagination) {
	total := len(products)
	totalPages := (total + limit - 1) / limit

	start := total
	if page-1 < totalPages {
		start = (page - 1) * limit
	}
	end := start + limit
	if end > total {
		end = total
	}

	cards := make([]models.StorefrontProductResponse, 0, end-start)
	for _, p := range products[start:end] {
		cards = append(cards, p.ToStorefrontResponse())
	}

	return cards, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
