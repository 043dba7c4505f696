package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/pkg/pagination"
)

// MenuRepository is the menu catalog. The settlement engine only reads it;
// recipe requirements are preloaded on every lookup.
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByCode(ctx context.Context, code string) (*entity.MenuItem, error)
	// GetByCodes retrieves multiple menu items by code in a single query
	GetByCodes(ctx context.Context, codes []string) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *MenuFilterParams) ([]entity.MenuItem, int64, error)
}

// MenuFilterParams contains filtering parameters for menu queries
type MenuFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *uuid.UUID
}

// CategoryRepository defines the interface for category data operations
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Category, error)
}
