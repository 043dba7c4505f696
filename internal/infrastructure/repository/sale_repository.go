package repository

import (
	"context"
	"errors"

	"github.com/tillworks/pos-api/internal/domain/entity"
	domainRepo "github.com/tillworks/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// Create appends the sale and its lines in one transaction. Sales are never
// updated afterwards.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(sale).Error
	})
}

func (r *saleRepository) GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&sale, "receipt_no = ?", receiptNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.Date != nil {
		query = query.Where("sale_date = ?", params.Date.Format("2006-01-02"))
	}

	if params.Month != nil {
		query = query.Where("to_char(sale_date, 'YYYY-MM') = ?", *params.Month)
	}

	if params.Method != nil {
		query = query.Where("payment_method = ?", int(*params.Method))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Preload("Lines").
		Find(&sales).Error

	return sales, total, err
}
