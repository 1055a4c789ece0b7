package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesight/salesight-api/internal/domain/entity"
)

type fakeSaleRepo struct {
	sales []entity.Sale
	err   error
}

func (f *fakeSaleRepo) ListAll(ctx context.Context) ([]entity.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sales, nil
}

func (f *fakeSaleRepo) ListInRange(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	if f.err != nil {
		return nil, f.err
	}
	var in []entity.Sale
	for _, s := range f.sales {
		if !s.Date.Before(start) && !s.Date.After(end) {
			in = append(in, s)
		}
	}
	return in, nil
}

func (f *fakeSaleRepo) CreateBatch(ctx context.Context, sales []entity.Sale) error {
	f.sales = append(f.sales, sales...)
	return nil
}

type fakeProductRepo struct {
	products []entity.Product
	err      error
}

func (f *fakeProductRepo) List(ctx context.Context, limit int) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > 0 && len(f.products) > limit {
		return f.products[:limit], nil
	}
	return f.products, nil
}

func (f *fakeProductRepo) GetByIDs(ctx context.Context, ids []int) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	want := make(map[int]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var matched []entity.Product
	for _, p := range f.products {
		if want[p.ProductID] {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (f *fakeProductRepo) CreateBatch(ctx context.Context, products []entity.Product) error {
	f.products = append(f.products, products...)
	return nil
}

func (f *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAnalyticsServiceTotalSales(t *testing.T) {
	t.Run("sums only sales inside the range", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{sales: []entity.Sale{
			{SaleID: 1, ProductID: 1, Date: date("2024-01-05"), TotalAmount: 100},
			{SaleID: 2, ProductID: 1, Date: date("2024-02-10"), TotalAmount: 50},
		}}
		svc := NewAnalyticsService(saleRepo, &fakeProductRepo{})

		total, err := svc.TotalSales(context.Background(), date("2024-01-01"), date("2024-01-31"))

		require.NoError(t, err)
		assert.Equal(t, 100.0, total)
	})

	t.Run("returns zero when nothing matches", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{sales: []entity.Sale{
			{SaleID: 1, ProductID: 1, Date: date("2024-06-01"), TotalAmount: 100},
		}}
		svc := NewAnalyticsService(saleRepo, &fakeProductRepo{})

		total, err := svc.TotalSales(context.Background(), date("2024-01-01"), date("2024-01-31"))

		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{sales: []entity.Sale{
			{SaleID: 1, ProductID: 1, Date: date("2024-01-01"), TotalAmount: 10},
			{SaleID: 2, ProductID: 1, Date: date("2024-01-31"), TotalAmount: 20},
		}}
		svc := NewAnalyticsService(saleRepo, &fakeProductRepo{})

		total, err := svc.TotalSales(context.Background(), date("2024-01-01"), date("2024-01-31"))

		require.NoError(t, err)
		assert.Equal(t, 30.0, total)
	})

	t.Run("surfaces store failures", func(t *testing.T) {
		svc := NewAnalyticsService(&fakeSaleRepo{err: errors.New("connection refused")}, &fakeProductRepo{})

		_, err := svc.TotalSales(context.Background(), date("2024-01-01"), date("2024-01-31"))

		assert.Error(t, err)
	})
}

func TestAnalyticsServiceTrendingProducts(t *testing.T) {
	products := []entity.Product{
		{ProductID: 1, ProductName: "Keyboard", Category: "A", Price: 50},
		{ProductID: 2, ProductName: "Monitor", Category: "B", Price: 200},
	}

	t.Run("returns at most three ranked products with resolved names", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{sales: []entity.Sale{
			{SaleID: 1, ProductID: 1, Quantity: 2, Date: date("2024-01-05"), TotalAmount: 100},
			{SaleID: 2, ProductID: 2, Quantity: 7, Date: date("2024-01-06"), TotalAmount: 1400},
			{SaleID: 3, ProductID: 1, Quantity: 1, Date: date("2024-01-07"), TotalAmount: 50},
		}}
		svc := NewAnalyticsService(saleRepo, &fakeProductRepo{products: products})

		trending, err := svc.TrendingProducts(context.Background(), date("2024-01-01"), date("2024-01-31"))

		require.NoError(t, err)
		require.Len(t, trending, 2)
		assert.Equal(t, "Monitor", trending[0].ProductName)
		assert.Equal(t, 7, trending[0].TotalQuantity)
		assert.Equal(t, "Keyboard", trending[1].ProductName)
		assert.Equal(t, 3, trending[1].TotalQuantity)
	})

	t.Run("excludes sales pointing at missing products", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{sales: []entity.Sale{
			{SaleID: 1, ProductID: 999, Quantity: 50, Date: date("2024-01-05"), TotalAmount: 5000},
			{SaleID: 2, ProductID: 1, Quantity: 1, Date: date("2024-01-06"), TotalAmount: 50},
		}}
		svc := NewAnalyticsService(saleRepo, &fakeProductRepo{products: products})

		trending, err := svc.TrendingProducts(context.Background(), date("2024-01-01"), date("2024-01-31"))

		require.NoError(t, err)
		require.Len(t, trending, 1)
		assert.Equal(t, "Keyboard", trending[0].ProductName)
	})

	t.Run("empty range yields empty ranking", func(t *testing.T) {
		svc := NewAnalyticsService(&fakeSaleRepo{}, &fakeProductRepo{products: products})

		trending, err := svc.TrendingProducts(context.Background(), date("2024-01-01"), date("2024-01-31"))

		require.NoError(t, err)
		assert.Empty(t, trending)
	})
}

func TestAnalyticsServiceCategorySales(t *testing.T) {
	products := []entity.Product{
		{ProductID: 1, ProductName: "Keyboard", Category: "A", Price: 50},
		{ProductID: 2, ProductName: "Monitor", Category: "B", Price: 200},
	}

	t.Run("breakdown sorted descending with percentages", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{sales: []entity.Sale{
			{SaleID: 1, ProductID: 1, Quantity: 1, Date: date("2024-01-05"), TotalAmount: 30},
			{SaleID: 2, ProductID: 2, Quantity: 1, Date: date("2024-01-06"), TotalAmount: 70},
		}}
		svc := NewAnalyticsService(saleRepo, &fakeProductRepo{products: products})

		breakdown, err := svc.CategorySales(context.Background(), date("2024-01-01"), date("2024-01-31"))

		require.NoError(t, err)
		require.Len(t, breakdown, 2)
		assert.Equal(t, "B", breakdown[0].Category)
		assert.Equal(t, 70.0, breakdown[0].TotalSales)
		assert.Equal(t, 70.0, breakdown[0].Percentage)
		assert.Equal(t, "A", breakdown[1].Category)
		assert.Equal(t, 30.0, breakdown[1].TotalSales)
		assert.Equal(t, 30.0, breakdown[1].Percentage)
	})

	t.Run("unmatched sales count toward neither numerator nor denominator", func(t *testing.T) {
		saleRepo := &fakeSaleRepo{sales: []entity.Sale{
			{SaleID: 1, ProductID: 1, Quantity: 1, Date: date("2024-01-05"), TotalAmount: 30},
			{SaleID: 2, ProductID: 999, Quantity: 1, Date: date("2024-01-06"), TotalAmount: 1000},
		}}
		svc := NewAnalyticsService(saleRepo, &fakeProductRepo{products: products})

		breakdown, err := svc.CategorySales(context.Background(), date("2024-01-01"), date("2024-01-31"))

		require.NoError(t, err)
		require.Len(t, breakdown, 1)
		assert.Equal(t, "A", breakdown[0].Category)
		assert.Equal(t, 100.0, breakdown[0].Percentage)
	})

	t.Run("empty range yields empty breakdown", func(t *testing.T) {
		svc := NewAnalyticsService(&fakeSaleRepo{}, &fakeProductRepo{products: products})

		breakdown, err := svc.CategorySales(context.Background(), date("2024-01-01"), date("2024-01-31"))

		require.NoError(t, err)
		assert.Empty(t, breakdown)
	})
}

func TestAnalyticsServiceListSales(t *testing.T) {
	t.Run("returns raw records", func(t *testing.T) {
		sales := []entity.Sale{
			{SaleID: 1, ProductID: 1, Quantity: 1, Date: date("2024-01-05"), TotalAmount: 100},
		}
		svc := NewAnalyticsService(&fakeSaleRepo{sales: sales}, &fakeProductRepo{})

		got, err := svc.ListSales(context.Background())

		require.NoError(t, err)
		assert.Equal(t, sales, got)
	})

	t.Run("empty store yields empty slice not nil", func(t *testing.T) {
		svc := NewAnalyticsService(&fakeSaleRepo{}, &fakeProductRepo{})

		got, err := svc.ListSales(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
