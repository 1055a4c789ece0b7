package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/salesight/salesight-api/internal/domain/entity"
)

// TrendingProduct is one entry of a top-N-by-quantity ranking
type TrendingProduct struct {
	ProductName   string  `json:"productName"`
	TotalQuantity int     `json:"totalQuantity"`
	TotalSales    float64 `json:"totalSales"`
}

// CategorySales is one entry of a category breakdown with its share of the
// grand total
type CategorySales struct {
	Category      string  `json:"category"`
	TotalSales    float64 `json:"totalSales"`
	TotalQuantity int     `json:"totalQuantity"`
	Count         int     `json:"count"`
	Percentage    float64 `json:"percentage"`
}

// TopNByQuantity ranks product rollups by TotalQuantity descending, ties
// broken by ProductID ascending so the ranking is deterministic. The limit is
// applied before the catalog join, then rollups with no catalog entry are
// dropped, so the result can hold fewer than n entries even when more sold
// products exist.
func TopNByQuantity(totals map[int]ProductRollup, n int, catalog map[int]entity.Product) []TrendingProduct {
	rollups := make([]ProductRollup, 0, len(totals))
	for _, r := range totals {
		rollups = append(rollups, r)
	}
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].TotalQuantity != rollups[j].TotalQuantity {
			return rollups[i].TotalQuantity > rollups[j].TotalQuantity
		}
		return rollups[i].ProductID < rollups[j].ProductID
	})

	if n >= 0 && len(rollups) > n {
		rollups = rollups[:n]
	}

	trending := make([]TrendingProduct, 0, len(rollups))
	for _, r := range rollups {
		product, ok := catalog[r.ProductID]
		if !ok {
			continue
		}
		trending = append(trending, TrendingProduct{
			ProductName:   product.ProductName,
			TotalQuantity: r.TotalQuantity,
			TotalSales:    r.TotalSales,
		})
	}
	return trending
}

// WithPercentages turns category rollups into a breakdown ordered by
// TotalSales descending (ties by category name), where each entry carries its
// percentage of the summed category totals. An empty input yields an empty
// slice rather than a division by zero.
func WithPercentages(totals map[string]CategoryRollup) []CategorySales {
	if len(totals) == 0 {
		return []CategorySales{}
	}

	grandTotal := decimal.Zero
	rollups := make([]CategoryRollup, 0, len(totals))
	for _, r := range totals {
		grandTotal = grandTotal.Add(decimal.NewFromFloat(r.TotalSales))
		rollups = append(rollups, r)
	}
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].TotalSales != rollups[j].TotalSales {
			return rollups[i].TotalSales > rollups[j].TotalSales
		}
		return rollups[i].Category < rollups[j].Category
	})

	hundred := decimal.NewFromInt(100)
	breakdown := make([]CategorySales, 0, len(rollups))
	for _, r := range rollups {
		percentage := 0.0
		if !grandTotal.IsZero() {
			percentage = decimal.NewFromFloat(r.TotalSales).Mul(hundred).Div(grandTotal).InexactFloat64()
		}
		breakdown = append(breakdown, CategorySales{
			Category:      r.Category,
			TotalSales:    r.TotalSales,
			TotalQuantity: r.TotalQuantity,
			Count:         r.SaleCount,
			Percentage:    percentage,
		})
	}
	return breakdown
}
