package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/repository"
)

// StockDeductor applies a committed sale's consumption to the ledgers.
// It never returns an error to the caller: by the time it runs the sale is
// already persisted, so every failure becomes a warning for reconciliation
// instead of a rollback.
type StockDeductor struct {
	inventoryRepo  repository.InventoryRepository
	ingredientRepo repository.IngredientRepository
	menuRepo       repository.MenuRepository
}

// NewStockDeductor creates a new stock deductor
func NewStockDeductor(
	inventoryRepo repository.InventoryRepository,
	ingredientRepo repository.IngredientRepository,
	menuRepo repository.MenuRepository,
) *StockDeductor {
	return &StockDeductor{
		inventoryRepo:  inventoryRepo,
		ingredientRepo: ingredientRepo,
		menuRepo:       menuRepo,
	}
}

// DeductForSale deducts merchandise stock and recipe ingredients for the
// given cart lines. Recipe items consume from the ingredient ledger, every
// other code from the inventory ledger; the two sides are independent and a
// failure on one does not block the other.
func (d *StockDeductor) DeductForSale(ctx context.Context, lines []entity.CartLine) []entity.StockWarning {
	codes := make([]string, 0, len(lines))
	quantities := make(map[string]int, len(lines))
	for _, line := range lines {
		if _, seen := quantities[line.Code]; !seen {
			codes = append(codes, line.Code)
		}
		quantities[line.Code] += line.Quantity
	}

	menuItems, err := d.menuRepo.GetByCodes(ctx, codes)
	if err != nil {
		return []entity.StockWarning{{
			Kind:    entity.StockWarningLedgerFailure,
			Message: fmt.Sprintf("Menu lookup failed: %v", err),
		}}
	}

	recipes := make(map[string]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		if menuItems[i].IsRecipe {
			recipes[menuItems[i].Code] = &menuItems[i]
		}
	}

	var warnings []entity.StockWarning
	warnings = append(warnings, d.deductMerchandise(ctx, codes, quantities, recipes)...)
	warnings = append(warnings, d.deductIngredients(ctx, quantities, recipes)...)

	return warnings
}

// deductMerchandise decrements inventory rows keyed by item code. Recipe
// codes are not merchandise and are skipped; codes absent from the inventory
// ledger are warned about and excluded so one unknown code does not block
// deduction of the rest of the cart.
func (d *StockDeductor) deductMerchandise(
	ctx context.Context,
	codes []string,
	quantities map[string]int,
	recipes map[string]*entity.MenuItem,
) []entity.StockWarning {
	decrements := make(map[string]int, len(quantities))
	lookup := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, isRecipe := recipes[code]; isRecipe {
			continue
		}
		lookup = append(lookup, code)
		decrements[code] = quantities[code]
	}

	if len(lookup) == 0 {
		return nil
	}

	items, err := d.inventoryRepo.GetByCodes(ctx, lookup)
	if err != nil {
		return []entity.StockWarning{{
			Kind:    entity.StockWarningLedgerFailure,
			Message: fmt.Sprintf("Inventory lookup failed: %v", err),
		}}
	}

	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.Code] = true
	}

	var warnings []entity.StockWarning
	for _, code := range lookup {
		if !known[code] {
			warnings = append(warnings, entity.StockWarning{
				Kind:    entity.StockWarningUnknownItemCode,
				Ref:     code,
				Message: fmt.Sprintf("Item %s is not in the inventory ledger", code),
			})
			delete(decrements, code)
		}
	}

	if len(decrements) == 0 {
		return warnings
	}

	failedCodes, err := d.inventoryRepo.DeductBatch(ctx, decrements)
	if err != nil {
		warnings = append(warnings, entity.StockWarning{
			Kind:    entity.StockWarningLedgerFailure,
			Message: fmt.Sprintf("Inventory deduction failed: %v", err),
		})
		return warnings
	}

	for _, code := range failedCodes {
		warnings = append(warnings, entity.StockWarning{
			Kind:    entity.StockWarningInsufficientStock,
			Ref:     code,
			Message: fmt.Sprintf("Insufficient stock for item %s; no inventory was deducted", code),
		})
	}

	return warnings
}

// deductIngredients expands each recipe into its bill of materials,
// aggregates requirements case-insensitively, and applies them in one
// all-or-nothing batch. Unknown or short ingredients abort the whole batch.
func (d *StockDeductor) deductIngredients(
	ctx context.Context,
	quantities map[string]int,
	recipes map[string]*entity.MenuItem,
) []entity.StockWarning {
	// Ingredient names collapse case-insensitively; displayName keeps the
	// first spelling for warnings.
	required := make(map[string]decimal.Decimal)
	displayName := make(map[string]string)
	for code, item := range recipes {
		sold := decimal.NewFromInt(int64(quantities[code]))
		for _, req := range item.Requirements {
			key := strings.ToLower(req.IngredientName)
			if _, ok := displayName[key]; !ok {
				displayName[key] = req.IngredientName
			}
			required[key] = required[key].Add(req.QuantityPerUnit.Mul(sold))
		}
	}

	if len(required) == 0 {
		return nil
	}

	names := make([]string, 0, len(required))
	for key := range required {
		names = append(names, key)
	}

	stocks, err := d.ingredientRepo.GetByNames(ctx, names)
	if err != nil {
		return []entity.StockWarning{{
			Kind:    entity.StockWarningLedgerFailure,
			Message: fmt.Sprintf("Ingredient lookup failed: %v", err),
		}}
	}

	stockByName := make(map[string]*entity.IngredientStock, len(stocks))
	for i := range stocks {
		stockByName[strings.ToLower(stocks[i].Name)] = &stocks[i]
	}

	// Validate the whole batch before touching the ledger. Any unknown or
	// short ingredient aborts the batch so stock is never partially consumed.
	var warnings []entity.StockWarning
	for key, amount := range required {
		stock, ok := stockByName[key]
		if !ok {
			warnings = append(warnings, entity.StockWarning{
				Kind:    entity.StockWarningUnknownIngredient,
				Ref:     displayName[key],
				Message: fmt.Sprintf("Ingredient %s is not in the ingredient ledger", displayName[key]),
			})
			continue
		}
		if stock.Quantity.LessThan(amount) {
			warnings = append(warnings, entity.StockWarning{
				Kind: entity.StockWarningInsufficientIngredient,
				Ref:  displayName[key],
				Message: fmt.Sprintf("Insufficient %s: need %s, have %s; no ingredients were deducted",
					displayName[key], amount, stock.Quantity),
			})
		}
	}
	if len(warnings) > 0 {
		return warnings
	}

	failedNames, err := d.ingredientRepo.DeductBatch(ctx, required, timeNow())
	if err != nil {
		return []entity.StockWarning{{
			Kind:    entity.StockWarningLedgerFailure,
			Message: fmt.Sprintf("Ingredient deduction failed: %v", err),
		}}
	}

	// A concurrent writer can still drain a row between the pre-check and
	// the batch; report whatever the batch refused.
	for _, name := range failedNames {
		display := displayName[strings.ToLower(name)]
		if display == "" {
			display = name
		}
		warnings = append(warnings, entity.StockWarning{
			Kind:    entity.StockWarningInsufficientIngredient,
			Ref:     display,
			Message: fmt.Sprintf("Insufficient %s; no ingredients were deducted", display),
		})
	}

	return warnings
}
