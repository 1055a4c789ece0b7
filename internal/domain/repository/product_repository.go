package repository

import (
	"context"

	"github.com/salesight/salesight-api/internal/domain/entity"
)

// ProductRepository defines the interface for product catalog reads
type ProductRepository interface {
	// List returns up to limit products ordered by ProductID ascending.
	// A limit of 0 or less means no cap.
	List(ctx context.Context, limit int) ([]entity.Product, error)
	// GetByIDs retrieves the catalog entries for the given product IDs in a
	// single query (prevents N+1 during joins). Missing IDs are simply absent
	// from the result.
	GetByIDs(ctx context.Context, ids []int) ([]entity.Product, error)
	CreateBatch(ctx context.Context, products []entity.Product) error
	Count(ctx context.Context) (int64, error)
}
