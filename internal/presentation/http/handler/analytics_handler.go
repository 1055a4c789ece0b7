package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/salesight/salesight-api/internal/application/service"
	"github.com/salesight/salesight-api/internal/presentation/http/dto/request"
	"github.com/salesight/salesight-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles the reporting HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// ListSales handles GET /analytics/ and returns the raw sale records
func (h *AnalyticsHandler) ListSales(c *gin.Context) {
	sales, err := h.analyticsService.ListSales(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sales)
}

// TotalSales handles POST /analytics/total_sales
func (h *AnalyticsHandler) TotalSales(c *gin.Context) {
	req, ok := bindDateRange(c)
	if !ok {
		return
	}
	start, end, err := req.Range()
	if err != nil {
		response.Error(c, err)
		return
	}

	total, err := h.analyticsService.TotalSales(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"totalSales": total})
}

// TrendingProducts handles POST /analytics/trending_products
func (h *AnalyticsHandler) TrendingProducts(c *gin.Context) {
	req, ok := bindDateRange(c)
	if !ok {
		return
	}
	start, end, err := req.Range()
	if err != nil {
		response.Error(c, err)
		return
	}

	trending, err := h.analyticsService.TrendingProducts(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"trendingProducts": trending})
}

// CategorySales handles POST /analytics/category_sales
func (h *AnalyticsHandler) CategorySales(c *gin.Context) {
	req, ok := bindDateRange(c)
	if !ok {
		return
	}
	start, end, err := req.Range()
	if err != nil {
		response.Error(c, err)
		return
	}

	breakdown, err := h.analyticsService.CategorySales(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"categorySales": breakdown})
}

// bindDateRange decodes the request body into a date-range request. An empty
// body is fine at this stage; the missing dates surface through Range with the
// proper message.
func bindDateRange(c *gin.Context) (request.DateRangeRequest, bool) {
	var req request.DateRangeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(c, "Invalid request body")
		return req, false
	}
	return req, true
}
