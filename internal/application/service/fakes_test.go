package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/internal/domain/repository"
)

// In-memory repository fakes. They mirror the conditional-update semantics
// of the Postgres implementations closely enough to exercise the services.

type fakeInventoryRepo struct {
	mu    sync.Mutex
	items map[string]*entity.InventoryItem // keyed by code
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]*entity.InventoryItem)}
}

func (f *fakeInventoryRepo) put(code string, quantity int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[code] = &entity.InventoryItem{ID: uuid.New(), Code: code, Name: code, Quantity: quantity}
}

func (f *fakeInventoryRepo) quantity(code string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[code]; ok {
		return item.Quantity
	}
	return -1
}

func (f *fakeInventoryRepo) Create(_ context.Context, item *entity.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.Code] = item
	return nil
}

func (f *fakeInventoryRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeInventoryRepo) GetByCode(_ context.Context, code string) (*entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[code]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeInventoryRepo) GetByCodes(_ context.Context, codes []string) ([]entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.InventoryItem
	for _, code := range codes {
		if item, ok := f.items[code]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) Update(_ context.Context, item *entity.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.Code] = item
	return nil
}

func (f *fakeInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for code, item := range f.items {
		if item.ID == id {
			delete(f.items, code)
			return nil
		}
	}
	return nil
}

func (f *fakeInventoryRepo) List(_ context.Context, _ *repository.InventoryFilterParams) ([]entity.InventoryItem, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.InventoryItem
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (f *fakeInventoryRepo) GetLowStock(_ context.Context) ([]entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.InventoryItem
	for _, item := range f.items {
		if item.IsLowStock() {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) GetExpired(_ context.Context, asOf time.Time) ([]entity.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.InventoryItem
	for _, item := range f.items {
		if item.IsExpired(asOf) {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) DeductBatch(_ context.Context, decrements map[string]int) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var failed []string
	for code, amount := range decrements {
		item, ok := f.items[code]
		if !ok || item.Quantity < amount {
			failed = append(failed, code)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for code, amount := range decrements {
		f.items[code].Quantity -= amount
	}
	return nil, nil
}

func (f *fakeInventoryRepo) RestockBatch(_ context.Context, increments map[string]int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for code, amount := range increments {
		if item, ok := f.items[code]; ok {
			item.Quantity += amount
		}
	}
	return nil
}

type fakeIngredientRepo struct {
	mu     sync.Mutex
	stocks map[string]*entity.IngredientStock // keyed by lowercase name
}

func newFakeIngredientRepo() *fakeIngredientRepo {
	return &fakeIngredientRepo{stocks: make(map[string]*entity.IngredientStock)}
}

func (f *fakeIngredientRepo) put(name string, quantity decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stocks[strings.ToLower(name)] = &entity.IngredientStock{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
	}
}

func (f *fakeIngredientRepo) quantity(name string) decimal.Decimal {
	f.mu.Lock()
	defer f.mu.Unlock()
	if stock, ok := f.stocks[strings.ToLower(name)]; ok {
		return stock.Quantity
	}
	return decimal.NewFromInt(-1)
}

func (f *fakeIngredientRepo) GetByName(_ context.Context, name string) (*entity.IngredientStock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if stock, ok := f.stocks[strings.ToLower(name)]; ok {
		copied := *stock
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeIngredientRepo) GetByNames(_ context.Context, names []string) ([]entity.IngredientStock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.IngredientStock
	for _, name := range names {
		if stock, ok := f.stocks[strings.ToLower(name)]; ok {
			out = append(out, *stock)
		}
	}
	return out, nil
}

func (f *fakeIngredientRepo) List(_ context.Context) ([]entity.IngredientStock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.IngredientStock
	for _, stock := range f.stocks {
		out = append(out, *stock)
	}
	return out, nil
}

func (f *fakeIngredientRepo) Upsert(_ context.Context, stock *entity.IngredientStock) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := strings.ToLower(stock.Name)
	if existing, ok := f.stocks[key]; ok {
		existing.Quantity = stock.Quantity
		existing.Unit = stock.Unit
		existing.LastUpdated = stock.LastUpdated
		*stock = *existing
		return nil
	}
	if stock.ID == uuid.Nil {
		stock.ID = uuid.New()
	}
	copied := *stock
	f.stocks[key] = &copied
	return nil
}

func (f *fakeIngredientRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, stock := range f.stocks {
		if stock.ID == id {
			delete(f.stocks, key)
			return nil
		}
	}
	return nil
}

func (f *fakeIngredientRepo) DeductBatch(_ context.Context, decrements map[string]decimal.Decimal, now time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var failed []string
	for name, amount := range decrements {
		stock, ok := f.stocks[strings.ToLower(name)]
		if !ok || stock.Quantity.LessThan(amount) {
			failed = append(failed, name)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for name, amount := range decrements {
		stock := f.stocks[strings.ToLower(name)]
		stock.Quantity = stock.Quantity.Sub(amount)
		stock.LastUpdated = now
	}
	return nil, nil
}

type fakeMenuRepo struct {
	mu    sync.Mutex
	items map[string]*entity.MenuItem // keyed by code
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{items: make(map[string]*entity.MenuItem)}
}

func (f *fakeMenuRepo) put(item *entity.MenuItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.Code] = item
}

func (f *fakeMenuRepo) Create(_ context.Context, item *entity.MenuItem) error {
	f.put(item)
	return nil
}

func (f *fakeMenuRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.items {
		if item.ID == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeMenuRepo) GetByCode(_ context.Context, code string) (*entity.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if item, ok := f.items[code]; ok {
		copied := *item
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeMenuRepo) GetByCodes(_ context.Context, codes []string) ([]entity.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.MenuItem
	for _, code := range codes {
		if item, ok := f.items[code]; ok {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeMenuRepo) Update(_ context.Context, item *entity.MenuItem) error {
	f.put(item)
	return nil
}

func (f *fakeMenuRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for code, item := range f.items {
		if item.ID == id {
			delete(f.items, code)
			return nil
		}
	}
	return nil
}

func (f *fakeMenuRepo) List(_ context.Context, _ *repository.MenuFilterParams) ([]entity.MenuItem, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.MenuItem
	for _, item := range f.items {
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

type fakeSaleRepo struct {
	mu    sync.Mutex
	sales []*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{}
}

func (f *fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	copied := *sale
	f.sales = append(f.sales, &copied)
	return nil
}

func (f *fakeSaleRepo) GetByReceiptNo(_ context.Context, receiptNo string) (*entity.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, sale := range f.sales {
		if sale.ReceiptNo == receiptNo {
			copied := *sale
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) List(_ context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []entity.Sale
	for _, sale := range f.sales {
		if params.Date != nil && sale.SaleDate.Format("2006-01-02") != params.Date.Format("2006-01-02") {
			continue
		}
		if params.Month != nil && sale.SaleDate.Format("2006-01") != *params.Month {
			continue
		}
		if params.Method != nil && sale.PaymentMethod != *params.Method {
			continue
		}
		matched = append(matched, *sale)
	}

	total := int64(len(matched))
	params.Pagination.Validate()
	start := params.Pagination.Offset()
	if start > len(matched) {
		return nil, total, nil
	}
	end := start + params.Pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (f *fakeSaleRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sales)
}

type fakeTableRepo struct {
	mu     sync.Mutex
	tables map[int]*entity.DiningTable
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{tables: make(map[int]*entity.DiningTable)}
}

func (f *fakeTableRepo) Create(_ context.Context, table *entity.DiningTable) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if table.ID == uuid.Nil {
		table.ID = uuid.New()
	}
	f.tables[table.TableNo] = table
	return nil
}

func (f *fakeTableRepo) GetByNumber(_ context.Context, tableNo int) (*entity.DiningTable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if table, ok := f.tables[tableNo]; ok {
		copied := *table
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeTableRepo) Update(_ context.Context, table *entity.DiningTable) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[table.TableNo] = table
	return nil
}

func (f *fakeTableRepo) List(_ context.Context) ([]entity.DiningTable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.DiningTable
	for _, table := range f.tables {
		out = append(out, *table)
	}
	return out, nil
}

func (f *fakeTableRepo) GetVacant(_ context.Context, seats int) ([]entity.DiningTable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.DiningTable
	for _, table := range f.tables {
		if table.Status == enum.TableStatusVacant && table.SeatingCapacity >= seats {
			out = append(out, *table)
		}
	}
	return out, nil
}
