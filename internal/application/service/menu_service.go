package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/pkg/apperror"
	"github.com/tillworks/pos-api/pkg/money"
	"github.com/tillworks/pos-api/pkg/pagination"
	"github.com/tillworks/pos-api/pkg/utils"
)

// MenuService manages the sellable catalog and its categories.
type MenuService struct {
	menuRepo     repository.MenuRepository
	categoryRepo repository.CategoryRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository, categoryRepo repository.CategoryRepository) *MenuService {
	return &MenuService{menuRepo: menuRepo, categoryRepo: categoryRepo}
}

// RequirementInput is one bill-of-materials line on a recipe item
type RequirementInput struct {
	IngredientName  string
	QuantityPerUnit decimal.Decimal
}

// CreateMenuItemInput represents the create menu item input
type CreateMenuItemInput struct {
	Code         string
	Name         string
	Price        money.Money
	CategoryID   *uuid.UUID
	Requirements []RequirementInput
}

// CreateMenuItem adds a catalog entry. Items with requirements become
// recipe items and consume ingredient stock when sold.
func (s *MenuService) CreateMenuItem(ctx context.Context, input *CreateMenuItemInput) (*entity.MenuItem, error) {
	if input.Name == "" {
		return nil, apperror.NewUnprocessableError("Menu item name is required")
	}
	if input.Price.IsNegative() {
		return nil, apperror.NewUnprocessableError("Price must not be negative")
	}

	code := input.Code
	if code == "" {
		code = utils.GenerateItemCode()
	}

	existing, err := s.menuRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Menu item code already exists: " + code)
	}

	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
	}

	item := &entity.MenuItem{
		Code:       code,
		Name:       input.Name,
		Price:      input.Price,
		CategoryID: input.CategoryID,
		IsRecipe:   len(input.Requirements) > 0,
	}
	for _, req := range input.Requirements {
		if req.QuantityPerUnit.LessThanOrEqual(decimal.Zero) {
			return nil, apperror.NewUnprocessableError("Requirement quantity for " + req.IngredientName + " must be positive")
		}
		item.Requirements = append(item.Requirements, entity.IngredientRequirement{
			IngredientName:  req.IngredientName,
			QuantityPerUnit: req.QuantityPerUnit,
		})
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *MenuService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// UpdateMenuItemInput represents the update menu item input. Nil fields are
// left unchanged; a non-nil Requirements slice replaces the whole recipe.
type UpdateMenuItemInput struct {
	Name         *string
	Price        *money.Money
	CategoryID   *uuid.UUID
	Requirements *[]RequirementInput
}

// UpdateMenuItem updates a catalog entry
func (s *MenuService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input *UpdateMenuItemInput) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperror.NewUnprocessableError("Price must not be negative")
		}
		item.Price = *input.Price
	}
	if input.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, apperror.NewNotFoundError("Category")
		}
		item.CategoryID = input.CategoryID
	}
	if input.Requirements != nil {
		item.Requirements = nil
		for _, req := range *input.Requirements {
			if req.QuantityPerUnit.LessThanOrEqual(decimal.Zero) {
				return nil, apperror.NewUnprocessableError("Requirement quantity for " + req.IngredientName + " must be positive")
			}
			item.Requirements = append(item.Requirements, entity.IngredientRequirement{
				MenuItemID:      item.ID,
				IngredientName:  req.IngredientName,
				QuantityPerUnit: req.QuantityPerUnit,
			})
		}
		item.IsRecipe = len(item.Requirements) > 0
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteMenuItem removes a catalog entry
func (s *MenuService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.menuRepo.Delete(ctx, id)
}

// ListMenuItems lists catalog entries with filtering
func (s *MenuService) ListMenuItems(ctx context.Context, params *repository.MenuFilterParams) (*pagination.PaginatedResult[entity.MenuItem], error) {
	items, total, err := s.menuRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// CreateCategory adds a menu category; the slug derives from the name.
func (s *MenuService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewUnprocessableError("Category name is required")
	}

	slug := utils.Slugify(name)
	existing, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Category already exists: " + name)
	}

	category := &entity.Category{Name: name, Slug: slug}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories lists all menu categories
func (s *MenuService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}

// DeleteCategory removes a menu category
func (s *MenuService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	return s.categoryRepo.Delete(ctx, id)
}
