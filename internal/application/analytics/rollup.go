package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/salesight/salesight-api/internal/domain/entity"
)

// ProductRollup is the per-product aggregate over a set of sales
type ProductRollup struct {
	ProductID     int
	TotalQuantity int
	TotalSales    float64
}

// CategoryRollup is the per-category aggregate over a set of sales joined
// against the product catalog
type CategoryRollup struct {
	Category      string
	TotalSales    float64
	TotalQuantity int
	SaleCount     int
}

// TotalSales sums TotalAmount over the given sales. Accumulation goes through
// decimal so a long run of float money values does not drift. Returns 0 for an
// empty slice.
func TotalSales(sales []entity.Sale) float64 {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(decimal.NewFromFloat(s.TotalAmount))
	}
	return total.InexactFloat64()
}

// PerProductTotals groups sales by ProductID, summing quantity and amount per
// group. The returned map carries no ordering guarantee.
func PerProductTotals(sales []entity.Sale) map[int]ProductRollup {
	sums := make(map[int]decimal.Decimal)
	quantities := make(map[int]int)
	for _, s := range sales {
		sums[s.ProductID] = sums[s.ProductID].Add(decimal.NewFromFloat(s.TotalAmount))
		quantities[s.ProductID] += s.Quantity
	}

	totals := make(map[int]ProductRollup, len(sums))
	for id, sum := range sums {
		totals[id] = ProductRollup{
			ProductID:     id,
			TotalQuantity: quantities[id],
			TotalSales:    sum.InexactFloat64(),
		}
	}
	return totals
}

// PerCategoryTotals joins each sale to its product and groups by the product's
// category. Sales whose ProductID has no catalog entry are dropped silently:
// they contribute to no category and to no grand total downstream. SaleCount
// is the number of sale records that landed in the category.
func PerCategoryTotals(sales []entity.Sale, catalog map[int]entity.Product) map[string]CategoryRollup {
	sums := make(map[string]decimal.Decimal)
	quantities := make(map[string]int)
	counts := make(map[string]int)
	for _, s := range sales {
		product, ok := catalog[s.ProductID]
		if !ok {
			continue
		}
		sums[product.Category] = sums[product.Category].Add(decimal.NewFromFloat(s.TotalAmount))
		quantities[product.Category] += s.Quantity
		counts[product.Category]++
	}

	totals := make(map[string]CategoryRollup, len(sums))
	for category, sum := range sums {
		totals[category] = CategoryRollup{
			Category:      category,
			TotalSales:    sum.InexactFloat64(),
			TotalQuantity: quantities[category],
			SaleCount:     counts[category],
		}
	}
	return totals
}

// CatalogByID builds the ProductID index used for join lookups
func CatalogByID(products []entity.Product) map[int]entity.Product {
	catalog := make(map[int]entity.Product, len(products))
	for _, p := range products {
		catalog[p.ProductID] = p
	}
	return catalog
}
