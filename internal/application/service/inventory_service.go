package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/pkg/apperror"
	"github.com/tillworks/pos-api/pkg/money"
	"github.com/tillworks/pos-api/pkg/pagination"
	"github.com/tillworks/pos-api/pkg/utils"
)

// InventoryService manages the merchandise and ingredient ledgers outside
// the settlement path (receiving, corrections, lookups).
type InventoryService struct {
	inventoryRepo  repository.InventoryRepository
	ingredientRepo repository.IngredientRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	ingredientRepo repository.IngredientRepository,
) *InventoryService {
	return &InventoryService{
		inventoryRepo:  inventoryRepo,
		ingredientRepo: ingredientRepo,
	}
}

// CreateItemInput represents the create inventory item input
type CreateItemInput struct {
	Code           string
	Name           string
	Quantity       int
	QuantityAlert  int
	BuyingPrice    money.Money
	SellingPrice   money.Money
	ExpirationDate *time.Time
	Notes          *string
}

// CreateItem adds a new merchandise row to the inventory ledger.
func (s *InventoryService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.InventoryItem, error) {
	if input.Quantity < 0 {
		return nil, apperror.NewUnprocessableError("Quantity must not be negative")
	}
	if input.BuyingPrice.IsNegative() || input.SellingPrice.IsNegative() {
		return nil, apperror.NewUnprocessableError("Prices must not be negative")
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateItemCode()
	}

	existing, err := s.inventoryRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Item code already exists: " + code)
	}

	item := &entity.InventoryItem{
		Code:           code,
		Name:           input.Name,
		Quantity:       input.Quantity,
		QuantityAlert:  input.QuantityAlert,
		BuyingPrice:    input.BuyingPrice,
		SellingPrice:   input.SellingPrice,
		ExpirationDate: input.ExpirationDate,
		Notes:          input.Notes,
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}
	return item, nil
}

// UpdateItemInput represents the update inventory item input. Nil fields
// are left unchanged.
type UpdateItemInput struct {
	Name           *string
	Quantity       *int
	QuantityAlert  *int
	BuyingPrice    *money.Money
	SellingPrice   *money.Money
	ExpirationDate *time.Time
	Notes          *string
}

// UpdateItem updates an inventory item
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Inventory item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, apperror.NewUnprocessableError("Quantity must not be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.QuantityAlert != nil {
		item.QuantityAlert = *input.QuantityAlert
	}
	if input.BuyingPrice != nil {
		item.BuyingPrice = *input.BuyingPrice
	}
	if input.SellingPrice != nil {
		item.SellingPrice = *input.SellingPrice
	}
	if input.ExpirationDate != nil {
		item.ExpirationDate = input.ExpirationDate
	}
	if input.Notes != nil {
		item.Notes = input.Notes
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes an inventory item
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Inventory item")
	}
	return s.inventoryRepo.Delete(ctx, id)
}

// ListItems lists inventory items with filtering
func (s *InventoryService) ListItems(ctx context.Context, params *repository.InventoryFilterParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// GetLowStock returns items at or below their alert threshold
func (s *InventoryService) GetLowStock(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.GetLowStock(ctx)
}

// GetExpired returns items past their expiration date
func (s *InventoryService) GetExpired(ctx context.Context) ([]entity.InventoryItem, error) {
	return s.inventoryRepo.GetExpired(ctx, timeNow())
}

// Restock increases stock for the given item codes (receiving a delivery).
func (s *InventoryService) Restock(ctx context.Context, increments map[string]int) error {
	for code, amount := range increments {
		if amount <= 0 {
			return apperror.NewUnprocessableError("Restock amount for " + code + " must be positive")
		}
	}
	return s.inventoryRepo.RestockBatch(ctx, increments)
}

// ListIngredients lists the ingredient ledger
func (s *InventoryService) ListIngredients(ctx context.Context) ([]entity.IngredientStock, error) {
	return s.ingredientRepo.List(ctx)
}

// UpsertIngredientInput represents the upsert ingredient input
type UpsertIngredientInput struct {
	Name     string
	Quantity decimal.Decimal
	Unit     string
}

// UpsertIngredient sets an ingredient's absolute stock level, creating the
// row if it does not exist yet.
func (s *InventoryService) UpsertIngredient(ctx context.Context, input *UpsertIngredientInput) (*entity.IngredientStock, error) {
	if input.Name == "" {
		return nil, apperror.NewUnprocessableError("Ingredient name is required")
	}
	if input.Quantity.IsNegative() {
		return nil, apperror.NewUnprocessableError("Ingredient quantity must not be negative")
	}

	stock := &entity.IngredientStock{
		Name:        input.Name,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		LastUpdated: timeNow(),
	}

	if err := s.ingredientRepo.Upsert(ctx, stock); err != nil {
		return nil, err
	}

	return stock, nil
}

// DeleteIngredient removes an ingredient row
func (s *InventoryService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	return s.ingredientRepo.Delete(ctx, id)
}
