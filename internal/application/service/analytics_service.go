package service

import (
	"context"
	"fmt"
	"time"

	"github.com/salesight/salesight-api/internal/application/analytics"
	"github.com/salesight/salesight-api/internal/domain/entity"
	"github.com/salesight/salesight-api/internal/domain/repository"
)

// TrendingLimit is the fixed size of the trending-products ranking
const TrendingLimit = 3

// AnalyticsService answers the reporting queries over the sales and product
// collections. Every query is a read-only computation over whatever the store
// returns, so the service holds no state beyond its repositories and is safe
// for concurrent use.
type AnalyticsService struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *AnalyticsService {
	return &AnalyticsService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
	}
}

// ListSales returns every raw sale record
func (s *AnalyticsService) ListSales(ctx context.Context) ([]entity.Sale, error) {
	sales, err := s.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	if sales == nil {
		sales = []entity.Sale{}
	}
	return sales, nil
}

// TotalSales returns the summed TotalAmount over sales dated in
// [start, end] inclusive. No matching sales means 0, not an error.
func (s *AnalyticsService) TotalSales(ctx context.Context, start, end time.Time) (float64, error) {
	sales, err := s.saleRepo.ListInRange(ctx, start, end)
	if err != nil {
		return 0, fmt.Errorf("fetch sales in range: %w", err)
	}
	return analytics.TotalSales(sales), nil
}

// TrendingProducts returns the top products by quantity sold in the range,
// capped at TrendingLimit and joined against the catalog for display names.
func (s *AnalyticsService) TrendingProducts(ctx context.Context, start, end time.Time) ([]analytics.TrendingProduct, error) {
	sales, err := s.saleRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch sales in range: %w", err)
	}

	totals := analytics.PerProductTotals(sales)
	catalog, err := s.catalogFor(ctx, totals)
	if err != nil {
		return nil, err
	}

	return analytics.TopNByQuantity(totals, TrendingLimit, catalog), nil
}

// CategorySales returns the per-category breakdown of sales in the range,
// each category carrying its percentage of the matched total.
func (s *AnalyticsService) CategorySales(ctx context.Context, start, end time.Time) ([]analytics.CategorySales, error) {
	sales, err := s.saleRepo.ListInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch sales in range: %w", err)
	}

	catalog, err := s.catalogFor(ctx, analytics.PerProductTotals(sales))
	if err != nil {
		return nil, err
	}

	return analytics.WithPercentages(analytics.PerCategoryTotals(sales, catalog)), nil
}

// catalogFor fetches the catalog entries referenced by the given rollups in a
// single query and indexes them by ProductID.
func (s *AnalyticsService) catalogFor(ctx context.Context, totals map[int]analytics.ProductRollup) (map[int]entity.Product, error) {
	ids := make([]int, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch products by ids: %w", err)
	}
	return analytics.CatalogByID(products), nil
}
