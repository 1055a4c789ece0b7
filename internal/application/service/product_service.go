package service

import (
	"context"
	"fmt"
	"time"

	"github.com/salesight/salesight-api/internal/application/analytics"
	"github.com/salesight/salesight-api/internal/domain/entity"
	"github.com/salesight/salesight-api/internal/domain/repository"
)

// ProductPageSize caps the products-with-sales listing. This is a pagination
// stopgap carried over from the original deployment, not a ranking.
const ProductPageSize = 20

// ProductWithSales is a catalog entry annotated with its quantity sold
type ProductWithSales struct {
	ProductID     int     `json:"ProductID"`
	ProductName   string  `json:"ProductName"`
	Category      string  `json:"Category"`
	Price         float64 `json:"Price"`
	TotalQuantity int     `json:"totalQuantity"`
}

// ProductService handles the product-side reporting queries
type ProductService struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// ProductsWithSales lists the first ProductPageSize catalog entries, each with
// the total quantity sold. The date range is optional: both bounds nil means
// all time. Products with no matching sales come back with quantity 0.
func (s *ProductService) ProductsWithSales(ctx context.Context, start, end *time.Time) ([]ProductWithSales, error) {
	products, err := s.productRepo.List(ctx, ProductPageSize)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	var sales []entity.Sale
	if start != nil && end != nil {
		sales, err = s.saleRepo.ListInRange(ctx, *start, *end)
	} else {
		sales, err = s.saleRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch sales: %w", err)
	}

	totals := analytics.PerProductTotals(sales)

	result := make([]ProductWithSales, 0, len(products))
	for _, p := range products {
		result = append(result, ProductWithSales{
			ProductID:     p.ProductID,
			ProductName:   p.ProductName,
			Category:      p.Category,
			Price:         p.Price,
			TotalQuantity: totals[p.ProductID].TotalQuantity,
		})
	}
	return result, nil
}
