package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/salesight/salesight-api/internal/domain/entity"
	domainRepo "github.com/salesight/salesight-api/internal/domain/repository"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) ListAll(ctx context.Context) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Order("sale_id ASC").
		Find(&sales).Error
	return sales, err
}

// ListInRange returns sales dated inside [start, end], both bounds inclusive.
func (r *saleRepository) ListInRange(ctx context.Context, start, end time.Time) ([]entity.Sale, error) {
	var sales []entity.Sale
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("sale_id ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepository) CreateBatch(ctx context.Context, sales []entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&sales).Error
}
