package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillworks/pos-api/internal/domain/entity"
)

func newStockFixture() (*StockDeductor, *fakeInventoryRepo, *fakeIngredientRepo, *fakeMenuRepo) {
	inventoryRepo := newFakeInventoryRepo()
	ingredientRepo := newFakeIngredientRepo()
	menuRepo := newFakeMenuRepo()
	return NewStockDeductor(inventoryRepo, ingredientRepo, menuRepo), inventoryRepo, ingredientRepo, menuRepo
}

func TestDeductForSaleMerchandise(t *testing.T) {
	t.Run("decrements each code by quantity sold", func(t *testing.T) {
		deductor, inventoryRepo, _, _ := newStockFixture()
		inventoryRepo.put("COLA", 10)
		inventoryRepo.put("CHIPS", 5)

		warnings := deductor.DeductForSale(context.Background(), []entity.CartLine{
			{Code: "COLA", Quantity: 3},
			{Code: "CHIPS", Quantity: 2},
			{Code: "COLA", Quantity: 1}, // repeated lines aggregate
		})

		assert.Empty(t, warnings)
		assert.Equal(t, 6, inventoryRepo.quantity("COLA"))
		assert.Equal(t, 3, inventoryRepo.quantity("CHIPS"))
	})

	t.Run("unknown code is warned and skipped, rest still deducts", func(t *testing.T) {
		deductor, inventoryRepo, _, _ := newStockFixture()
		inventoryRepo.put("COLA", 10)

		warnings := deductor.DeductForSale(context.Background(), []entity.CartLine{
			{Code: "COLA", Quantity: 2},
			{Code: "GHOST", Quantity: 1},
		})

		require.Len(t, warnings, 1)
		assert.Equal(t, entity.StockWarningUnknownItemCode, warnings[0].Kind)
		assert.Equal(t, "GHOST", warnings[0].Ref)
		assert.Equal(t, 8, inventoryRepo.quantity("COLA"))
	})

	t.Run("insufficient stock aborts the whole batch", func(t *testing.T) {
		deductor, inventoryRepo, _, _ := newStockFixture()
		inventoryRepo.put("COLA", 10)
		inventoryRepo.put("CHIPS", 1)

		warnings := deductor.DeductForSale(context.Background(), []entity.CartLine{
			{Code: "COLA", Quantity: 2},
			{Code: "CHIPS", Quantity: 5},
		})

		require.Len(t, warnings, 1)
		assert.Equal(t, entity.StockWarningInsufficientStock, warnings[0].Kind)
		assert.Equal(t, "CHIPS", warnings[0].Ref)

		// All-or-nothing: the covered row is untouched too.
		assert.Equal(t, 10, inventoryRepo.quantity("COLA"))
		assert.Equal(t, 1, inventoryRepo.quantity("CHIPS"))
	})
}

func TestDeductForSaleIngredients(t *testing.T) {
	salad := &entity.MenuItem{
		Code:     "SALAD",
		Name:     "Garden Salad",
		IsRecipe: true,
		Requirements: []entity.IngredientRequirement{
			{IngredientName: "Lettuce", QuantityPerUnit: decimal.RequireFromString("0.5")},
			{IngredientName: "Tomato", QuantityPerUnit: decimal.RequireFromString("0.25")},
		},
	}

	t.Run("scales requirements by quantity sold", func(t *testing.T) {
		deductor, _, ingredientRepo, menuRepo := newStockFixture()
		menuRepo.put(salad)
		ingredientRepo.put("Lettuce", decimal.RequireFromString("5"))
		ingredientRepo.put("Tomato", decimal.RequireFromString("5"))

		warnings := deductor.DeductForSale(context.Background(), []entity.CartLine{
			{Code: "SALAD", Quantity: 2},
		})

		assert.Empty(t, warnings)
		assert.True(t, ingredientRepo.quantity("Lettuce").Equal(decimal.RequireFromString("4")))
		assert.True(t, ingredientRepo.quantity("Tomato").Equal(decimal.RequireFromString("4.5")))
	})

	t.Run("short ingredient aborts the batch with a warning", func(t *testing.T) {
		deductor, _, ingredientRepo, menuRepo := newStockFixture()
		menuRepo.put(salad)
		// 0.5 per salad, three sold, only 1.0 on hand.
		ingredientRepo.put("Lettuce", decimal.RequireFromString("1.0"))
		ingredientRepo.put("Tomato", decimal.RequireFromString("5"))

		warnings := deductor.DeductForSale(context.Background(), []entity.CartLine{
			{Code: "SALAD", Quantity: 3},
		})

		require.Len(t, warnings, 1)
		assert.Equal(t, entity.StockWarningInsufficientIngredient, warnings[0].Kind)
		assert.Equal(t, "Lettuce", warnings[0].Ref)
		assert.Contains(t, warnings[0].Message, "need 1.5, have 1")

		// Nothing was consumed, tomato included.
		assert.True(t, ingredientRepo.quantity("Lettuce").Equal(decimal.RequireFromString("1.0")))
		assert.True(t, ingredientRepo.quantity("Tomato").Equal(decimal.RequireFromString("5")))
	})

	t.Run("unknown ingredient aborts the batch", func(t *testing.T) {
		deductor, _, ingredientRepo, menuRepo := newStockFixture()
		menuRepo.put(salad)
		ingredientRepo.put("Lettuce", decimal.RequireFromString("5"))
		// Tomato never stocked.

		warnings := deductor.DeductForSale(context.Background(), []entity.CartLine{
			{Code: "SALAD", Quantity: 1},
		})

		require.Len(t, warnings, 1)
		assert.Equal(t, entity.StockWarningUnknownIngredient, warnings[0].Kind)
		assert.Equal(t, "Tomato", warnings[0].Ref)
		assert.True(t, ingredientRepo.quantity("Lettuce").Equal(decimal.RequireFromString("5")))
	})

	t.Run("ingredient names match case-insensitively", func(t *testing.T) {
		deductor, _, ingredientRepo, menuRepo := newStockFixture()
		menuRepo.put(&entity.MenuItem{
			Code:     "WRAP",
			Name:     "Wrap",
			IsRecipe: true,
			Requirements: []entity.IngredientRequirement{
				{IngredientName: "LETTUCE", QuantityPerUnit: decimal.RequireFromString("0.5")},
			},
		})
		ingredientRepo.put("lettuce", decimal.RequireFromString("2"))

		warnings := deductor.DeductForSale(context.Background(), []entity.CartLine{
			{Code: "WRAP", Quantity: 2},
		})

		assert.Empty(t, warnings)
		assert.True(t, ingredientRepo.quantity("lettuce").Equal(decimal.RequireFromString("1")))
	})

	t.Run("non-recipe lines touch no ingredients", func(t *testing.T) {
		deductor, inventoryRepo, ingredientRepo, menuRepo := newStockFixture()
		menuRepo.put(&entity.MenuItem{Code: "COLA", Name: "Cola"})
		inventoryRepo.put("COLA", 10)
		ingredientRepo.put("Lettuce", decimal.RequireFromString("5"))

		warnings := deductor.DeductForSale(context.Background(), []entity.CartLine{
			{Code: "COLA", Quantity: 2},
		})

		assert.Empty(t, warnings)
		assert.True(t, ingredientRepo.quantity("Lettuce").Equal(decimal.RequireFromString("5")))
	})
}

func TestDeductForSaleBothLedgers(t *testing.T) {
	// A cart can hit both ledgers at once: merchandise rows for packaged
	// goods, ingredient rows for recipe items.
	deductor, inventoryRepo, ingredientRepo, menuRepo := newStockFixture()
	inventoryRepo.put("COLA", 10)
	menuRepo.put(&entity.MenuItem{
		Code:     "SALAD",
		Name:     "Garden Salad",
		IsRecipe: true,
		Requirements: []entity.IngredientRequirement{
			{IngredientName: "Lettuce", QuantityPerUnit: decimal.RequireFromString("0.5")},
		},
	})
	ingredientRepo.put("Lettuce", decimal.RequireFromString("2"))

	warnings := deductor.DeductForSale(context.Background(), []entity.CartLine{
		{Code: "COLA", Quantity: 1},
		{Code: "SALAD", Quantity: 1},
	})

	// The recipe code never touches the inventory ledger, so a salad with
	// no inventory row is not an unknown-code warning.
	assert.Empty(t, warnings)
	assert.Equal(t, 9, inventoryRepo.quantity("COLA"))
	assert.True(t, ingredientRepo.quantity("Lettuce").Equal(decimal.RequireFromString("1.5")))
}
