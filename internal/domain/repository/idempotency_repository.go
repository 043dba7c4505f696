package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tillworks/pos-api/internal/domain/entity"
)

// IdempotencyRepository stores processed request keys for replay
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, employeeID uuid.UUID) (*entity.IdempotencyKey, error)
	DeleteExpired(ctx context.Context) error
}
