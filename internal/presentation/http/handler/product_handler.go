package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/salesight/salesight-api/internal/application/service"
	"github.com/salesight/salesight-api/internal/presentation/http/dto/response"
)

// ProductHandler handles the product listing HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductsWithSales handles POST /products/ and returns the first page of the
// catalog annotated with quantities sold. The date range is optional.
func (h *ProductHandler) ProductsWithSales(c *gin.Context) {
	req, ok := bindDateRange(c)
	if !ok {
		return
	}
	start, end, err := req.OptionalRange()
	if err != nil {
		response.Error(c, err)
		return
	}

	products, err := h.productService.ProductsWithSales(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, products)
}
