package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/internal/domain/entity"
	domainRepo "github.com/tillworks/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) domainRepo.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetByName(ctx context.Context, name string) (*entity.IngredientStock, error) {
	var stock entity.IngredientStock
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stock, err
}

func (r *ingredientRepository) GetByNames(ctx context.Context, names []string) ([]entity.IngredientStock, error) {
	if len(names) == 0 {
		return []entity.IngredientStock{}, nil
	}

	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}

	var stocks []entity.IngredientStock
	err := r.db.WithContext(ctx).
		Where("LOWER(name) IN ?", lowered).
		Find(&stocks).Error
	return stocks, err
}

func (r *ingredientRepository) List(ctx context.Context) ([]entity.IngredientStock, error) {
	var stocks []entity.IngredientStock
	err := r.db.WithContext(ctx).Order("name ASC").Find(&stocks).Error
	return stocks, err
}

// Upsert inserts the row or, when a row with the same name already exists
// case-insensitively, updates its quantity and unit in place.
func (r *ingredientRepository) Upsert(ctx context.Context, stock *entity.IngredientStock) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.IngredientStock
		err := tx.Where("LOWER(name) = LOWER(?)", stock.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(stock).Error
		}
		if err != nil {
			return err
		}

		existing.Quantity = stock.Quantity
		existing.Unit = stock.Unit
		existing.LastUpdated = stock.LastUpdated
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		*stock = existing
		return nil
	})
}

func (r *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.IngredientStock{}, "id = ?", id).Error
}

// DeductBatch atomically decrements ingredient stock inside one transaction.
// Requirements are validated against current rows first; nothing is written
// unless every ingredient can cover its decrement. Names match
// case-insensitively and touched rows get last_updated bumped.
func (r *ingredientRepository) DeductBatch(ctx context.Context, decrements map[string]decimal.Decimal, now time.Time) ([]string, error) {
	if len(decrements) == 0 {
		return nil, nil
	}

	var failedNames []string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// First pass: lock and validate every row before touching any of them.
		rows := make(map[string]*entity.IngredientStock, len(decrements))
		for name, amount := range decrements {
			var stock entity.IngredientStock
			err := tx.Where("LOWER(name) = LOWER(?)", name).First(&stock).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				failedNames = append(failedNames, name)
				continue
			}
			if err != nil {
				return err
			}
			if stock.Quantity.LessThan(amount) {
				failedNames = append(failedNames, name)
				continue
			}
			rows[name] = &stock
		}

		if len(failedNames) > 0 {
			return errInsufficientStock
		}

		// Second pass: apply the decrements.
		for name, amount := range decrements {
			stock := rows[name]
			result := tx.Model(&entity.IngredientStock{}).
				Where("id = ? AND quantity >= ?", stock.ID, amount).
				Updates(map[string]interface{}{
					"quantity":     gorm.Expr("quantity - ?", amount),
					"last_updated": now,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedNames = append(failedNames, name)
			}
		}

		if len(failedNames) > 0 {
			return errInsufficientStock
		}

		return nil
	})

	if errors.Is(err, errInsufficientStock) {
		return failedNames, nil
	}

	return failedNames, err
}
