package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/pkg/money"
)

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category, ok := f.categories[id]; ok {
		copied := *category
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, category := range f.categories {
		if category.Slug == slug {
			copied := *category
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context) ([]entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Category
	for _, category := range f.categories {
		out = append(out, *category)
	}
	return out, nil
}

func newMenuFixture() (*MenuService, *fakeMenuRepo, *fakeCategoryRepo) {
	menuRepo := newFakeMenuRepo()
	categoryRepo := newFakeCategoryRepo()
	return NewMenuService(menuRepo, categoryRepo), menuRepo, categoryRepo
}

func TestCreateMenuItem(t *testing.T) {
	service, _, categoryRepo := newMenuFixture()

	t.Run("plain item is not a recipe", func(t *testing.T) {
		item, err := service.CreateMenuItem(context.Background(), &CreateMenuItemInput{
			Code:  "COLA",
			Name:  "Cola",
			Price: money.FromCents(350),
		})
		require.NoError(t, err)
		assert.False(t, item.IsRecipe)
	})

	t.Run("requirements make it a recipe", func(t *testing.T) {
		item, err := service.CreateMenuItem(context.Background(), &CreateMenuItemInput{
			Code:  "SALAD",
			Name:  "Garden Salad",
			Price: money.FromCents(1200),
			Requirements: []RequirementInput{
				{IngredientName: "Lettuce", QuantityPerUnit: decimal.RequireFromString("0.5")},
			},
		})
		require.NoError(t, err)
		assert.True(t, item.IsRecipe)
		require.Len(t, item.Requirements, 1)
	})

	t.Run("duplicate code is a conflict", func(t *testing.T) {
		_, err := service.CreateMenuItem(context.Background(), &CreateMenuItemInput{
			Code: "COLA", Name: "Cola Again", Price: money.FromCents(350),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		bogus := uuid.New()
		_, err := service.CreateMenuItem(context.Background(), &CreateMenuItemInput{
			Name: "Orphan", Price: money.FromCents(100), CategoryID: &bogus,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("known category accepted", func(t *testing.T) {
		category := &entity.Category{Name: "Drinks", Slug: "drinks"}
		require.NoError(t, categoryRepo.Create(context.Background(), category))

		item, err := service.CreateMenuItem(context.Background(), &CreateMenuItemInput{
			Name: "Lemonade", Price: money.FromCents(450), CategoryID: &category.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, category.ID, *item.CategoryID)
	})

	t.Run("non-positive requirement rejected", func(t *testing.T) {
		_, err := service.CreateMenuItem(context.Background(), &CreateMenuItemInput{
			Name: "Bad Recipe", Price: money.FromCents(100),
			Requirements: []RequirementInput{
				{IngredientName: "Lettuce", QuantityPerUnit: decimal.Zero},
			},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be positive")
	})
}

func TestUpdateMenuItemReplacesRecipe(t *testing.T) {
	service, _, _ := newMenuFixture()

	item, err := service.CreateMenuItem(context.Background(), &CreateMenuItemInput{
		Code:  "SALAD",
		Name:  "Garden Salad",
		Price: money.FromCents(1200),
		Requirements: []RequirementInput{
			{IngredientName: "Lettuce", QuantityPerUnit: decimal.RequireFromString("0.5")},
			{IngredientName: "Tomato", QuantityPerUnit: decimal.RequireFromString("0.25")},
		},
	})
	require.NoError(t, err)

	newRecipe := []RequirementInput{
		{IngredientName: "Kale", QuantityPerUnit: decimal.RequireFromString("0.4")},
	}
	updated, err := service.UpdateMenuItem(context.Background(), item.ID, &UpdateMenuItemInput{
		Requirements: &newRecipe,
	})
	require.NoError(t, err)

	// The whole bill of materials is replaced, not merged.
	require.Len(t, updated.Requirements, 1)
	assert.Equal(t, "Kale", updated.Requirements[0].IngredientName)
	assert.True(t, updated.IsRecipe)

	// An empty replacement demotes it to a plain item.
	empty := []RequirementInput{}
	updated, err = service.UpdateMenuItem(context.Background(), item.ID, &UpdateMenuItemInput{
		Requirements: &empty,
	})
	require.NoError(t, err)
	assert.False(t, updated.IsRecipe)
	assert.Empty(t, updated.Requirements)
}

func TestCreateCategory(t *testing.T) {
	service, _, _ := newMenuFixture()

	category, err := service.CreateCategory(context.Background(), "Hot Drinks")
	require.NoError(t, err)
	assert.Equal(t, "hot-drinks", category.Slug)

	// Names that slug the same way collide.
	_, err = service.CreateCategory(context.Background(), "HOT drinks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = service.CreateCategory(context.Background(), "")
	assert.Error(t, err)
}
