package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tillworks/pos-api/internal/domain/entity"
	domainRepo "github.com/tillworks/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

// errInsufficientStock aborts a deduction transaction so gorm rolls it
// back. It is a private control-flow signal, distinct from gorm's own
// errors, and never escapes the repository layer.
var errInsufficientStock = errors.New("insufficient stock")

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventoryRepository) GetByCode(ctx context.Context, code string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// GetByCodes retrieves multiple items by code in a single query
func (r *inventoryRepository) GetByCodes(ctx context.Context, codes []string) ([]entity.InventoryItem, error) {
	if len(codes) == 0 {
		return []entity.InventoryItem{}, nil
	}
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).Where("code IN ?", codes).Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context, params *domainRepo.InventoryFilterParams) ([]entity.InventoryItem, int64, error) {
	var items []entity.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR code ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.LowStock {
		query = query.Where("quantity <= quantity_alert")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&items).Error

	return items, total, err
}

func (r *inventoryRepository) GetLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Where("quantity <= quantity_alert").
		Find(&items).Error
	return items, err
}

func (r *inventoryRepository) GetExpired(ctx context.Context, asOf time.Time) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).
		Where("expiration_date IS NOT NULL AND expiration_date < ?", asOf).
		Find(&items).Error
	return items, err
}

// DeductBatch atomically decrements stock for multiple items in a single
// transaction. Each decrement is conditional on sufficient quantity:
// UPDATE inventory_items SET quantity = quantity - ? WHERE code = ? AND quantity >= ?
// If any item has insufficient stock, the entire transaction is rolled back.
func (r *inventoryRepository) DeductBatch(ctx context.Context, decrements map[string]int) ([]string, error) {
	if len(decrements) == 0 {
		return nil, nil
	}

	var failedCodes []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for code, amount := range decrements {
			result := tx.Model(&entity.InventoryItem{}).
				Where("code = ? AND quantity >= ?", code, amount).
				Update("quantity", gorm.Expr("quantity - ?", amount))

			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				failedCodes = append(failedCodes, code)
			}
		}

		// If any items failed, rollback entire transaction
		if len(failedCodes) > 0 {
			return errInsufficientStock
		}

		return nil
	})

	// If we rolled back due to insufficient stock, return the failed codes
	// without the transaction error
	if errors.Is(err, errInsufficientStock) {
		return failedCodes, nil
	}

	return failedCodes, err
}

// RestockBatch atomically increments stock for multiple items (receiving/returns).
func (r *inventoryRepository) RestockBatch(ctx context.Context, increments map[string]int) error {
	if len(increments) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for code, amount := range increments {
			if err := tx.Model(&entity.InventoryItem{}).
				Where("code = ?", code).
				Update("quantity", gorm.Expr("quantity + ?", amount)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
