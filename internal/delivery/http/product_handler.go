package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storefront/backend/internal/domain"
)

// productQueryRequest binds GET /products query parameters
type productQueryRequest struct {
	Category []string `form:"category"`
	Material []string `form:"material"`
	MinPrice int      `form:"minPrice,default=0"`
	MaxPrice int      `form:"maxPrice,default=3000"`
	Page     int      `form:"_page,default=1"`
	Limit    int      `form:"_limit,default=20"`
	SortBy   string   `form:"sortBy"`
}

func (r productQueryRequest) toQuery() domain.ProductQuery {
	return domain.ProductQuery{
		Categories: r.Category,
		Materials:  r.Material,
		MinPrice:   float64(r.MinPrice),
		MaxPrice:   float64(r.MaxPrice),
		SortBy:     r.SortBy,
		Page:       r.Page,
		Limit:      r.Limit,
	}
}

// ListProducts returns one page of the aggregated, standardized catalog
func (h *Handler) ListProducts(c *gin.Context) {
	if h.catalog == nil {
		serviceUnavailable(c, "catalog")
		return
	}

	var req productQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		badRequest(c, fmt.Errorf("invalid query parameters: %w", err))
		return
	}

	page, _ := h.catalog.ListProducts(c.Request.Context(), req.toQuery())
	c.JSON(http.StatusOK, page)
}

// StandardizeProducts standardizes a caller-supplied array of raw vendor records.
// Invalid records and non-object entries are counted in the X-Dropped-Records header.
func (h *Handler) StandardizeProducts(c *gin.Context) {
	if h.catalog == nil {
		serviceUnavailable(c, "catalog")
		return
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	var items []any
	if err := dec.Decode(&items); err != nil {
		badRequest(c, fmt.Errorf("body must be a JSON array of records: %w", err))
		return
	}

	products, report := h.catalog.Standardize(items)

	c.Header("X-Dropped-Records", strconv.Itoa(report.Dropped()))
	c.JSON(http.StatusOK, products)
}
