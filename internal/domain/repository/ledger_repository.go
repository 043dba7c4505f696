package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/pkg/pagination"
)

// InventoryRepository is the merchandise side of the ledger store. It is
// the only writer of inventory rows; every mutating call is one atomic
// read-modify-write.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	GetByCode(ctx context.Context, code string) (*entity.InventoryItem, error)
	// GetByCodes retrieves multiple items by code in a single query (prevents N+1)
	GetByCodes(ctx context.Context, codes []string) ([]entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryItem, int64, error)
	GetLowStock(ctx context.Context) ([]entity.InventoryItem, error)
	GetExpired(ctx context.Context, asOf time.Time) ([]entity.InventoryItem, error)
	// DeductBatch atomically decrements stock for multiple items, keyed by code.
	// Each decrement runs as a conditional update (quantity >= amount); if any
	// item has insufficient stock the whole transaction is rolled back and the
	// failing codes are returned with a nil error.
	DeductBatch(ctx context.Context, decrements map[string]int) (failedCodes []string, err error)
	// RestockBatch atomically increments stock for multiple items (receiving/returns).
	RestockBatch(ctx context.Context, increments map[string]int) error
}

// InventoryFilterParams contains filtering parameters for inventory queries
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	LowStock   bool
}

// IngredientRepository is the ingredient side of the ledger store.
// Ingredient names match case-insensitively.
type IngredientRepository interface {
	GetByName(ctx context.Context, name string) (*entity.IngredientStock, error)
	// GetByNames retrieves multiple ingredient rows in a single query.
	GetByNames(ctx context.Context, names []string) ([]entity.IngredientStock, error)
	List(ctx context.Context) ([]entity.IngredientStock, error)
	Upsert(ctx context.Context, stock *entity.IngredientStock) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeductBatch atomically decrements ingredient stock, keyed by name.
	// All requirements are validated against current stock inside the
	// transaction before any decrement is committed; on any shortfall the
	// transaction rolls back and the failing names are returned with a nil
	// error. Touched rows get LastUpdated set to now.
	DeductBatch(ctx context.Context, decrements map[string]decimal.Decimal, now time.Time) (failedNames []string, err error)
}
