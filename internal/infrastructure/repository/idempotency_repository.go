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

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) Create(ctx context.Context, key *entity.IdempotencyKey) error {
	return r.db.WithContext(ctx).Create(key).Error
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, employeeID uuid.UUID) (*entity.IdempotencyKey, error) {
	var idempotencyKey entity.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("key = ? AND employee_id = ?", key, employeeID).
		First(&idempotencyKey).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &idempotencyKey, nil
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.IdempotencyKey{}).Error
}
