package repository

import (
	"context"
	"time"

	"github.com/salesight/salesight-api/internal/domain/entity"
)

// SaleRepository defines the interface for sale record reads
type SaleRepository interface {
	// ListAll returns every sale on record, ordered by SaleID ascending.
	ListAll(ctx context.Context) ([]entity.Sale, error)
	// ListInRange returns sales whose Date falls in [start, end] inclusive.
	ListInRange(ctx context.Context, start, end time.Time) ([]entity.Sale, error)
	CreateBatch(ctx context.Context, sales []entity.Sale) error
}
