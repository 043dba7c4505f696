package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/pkg/money"
	"github.com/tillworks/pos-api/pkg/pagination"
)

func seedSales(t *testing.T, repo *fakeSaleRepo) {
	t.Helper()

	march15 := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	march16 := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	april1 := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	sales := []entity.Sale{
		{
			ReceiptNo:     "R20250315120000-AAAAAAAA",
			SaleDate:      march15,
			PaymentMethod: enum.PaymentMethodCash,
			SubTotal:      money.FromCents(20000),
			Discount:      money.FromCents(2000),
			Tax:           money.FromCents(1440),
			Total:         money.FromCents(19440),
		},
		{
			ReceiptNo:     "R20250315130000-BBBBBBBB",
			SaleDate:      march15,
			PaymentMethod: enum.PaymentMethodCreditCard,
			SubTotal:      money.FromCents(5000),
			Discount:      money.FromCents(500),
			Tax:           money.FromCents(360),
			Total:         money.FromCents(4860),
		},
		{
			ReceiptNo:     "R20250316090000-CCCCCCCC",
			SaleDate:      march16,
			PaymentMethod: enum.PaymentMethodCash,
			SubTotal:      money.FromCents(1000),
			Tax:           money.FromCents(80),
			Total:         money.FromCents(1080),
		},
		{
			ReceiptNo:     "R20250401100000-DDDDDDDD",
			SaleDate:      april1,
			PaymentMethod: enum.PaymentMethodEWallet,
			SubTotal:      money.FromCents(3000),
			Tax:           money.FromCents(240),
			Total:         money.FromCents(3240),
		},
	}
	for i := range sales {
		require.NoError(t, repo.Create(context.Background(), &sales[i]))
	}
}

func TestGetSale(t *testing.T) {
	repo := newFakeSaleRepo()
	seedSales(t, repo)
	service := NewReportService(repo)

	sale, err := service.GetSale(context.Background(), "R20250315120000-AAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, int64(19440), sale.Total.Cents())

	_, err = service.GetSale(context.Background(), "R00000000000000-00000000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListSalesFilters(t *testing.T) {
	repo := newFakeSaleRepo()
	seedSales(t, repo)
	service := NewReportService(repo)

	march15 := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	march := "2025-03"
	cash := enum.PaymentMethodCash

	tests := []struct {
		name      string
		params    *repository.SaleFilterParams
		wantTotal int64
	}{
		{"no filter", &repository.SaleFilterParams{}, 4},
		{"by date", &repository.SaleFilterParams{Date: &march15}, 2},
		{"by month", &repository.SaleFilterParams{Month: &march}, 3},
		{"by method", &repository.SaleFilterParams{Method: &cash}, 2},
		{"date and method", &repository.SaleFilterParams{Date: &march15, Method: &cash}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.Pagination = &pagination.PaginationParams{Page: 1, PerPage: 10}
			result, err := service.ListSales(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Pagination.Total)
			assert.Len(t, result.Items, int(tt.wantTotal))
		})
	}
}

func TestSummarize(t *testing.T) {
	repo := newFakeSaleRepo()
	seedSales(t, repo)
	service := NewReportService(repo)

	t.Run("whole log", func(t *testing.T) {
		summary, err := service.Summarize(context.Background(), nil, nil, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(4), summary.SaleCount)
		assert.Equal(t, int64(28620), summary.GrossSales.Cents())
		assert.Equal(t, int64(2500), summary.TotalDiscount.Cents())
		assert.Equal(t, int64(2120), summary.TotalTax.Cents())
		assert.Equal(t, int64(20520), summary.ByMethod["Cash"].Cents())
		assert.Equal(t, int64(4860), summary.ByMethod["CreditCard"].Cents())
		assert.Equal(t, int64(3240), summary.ByMethod["EWallet"].Cents())
	})

	t.Run("sliced by month", func(t *testing.T) {
		march := "2025-03"
		summary, err := service.Summarize(context.Background(), nil, &march, nil)
		require.NoError(t, err)

		assert.Equal(t, int64(3), summary.SaleCount)
		assert.Equal(t, int64(25380), summary.GrossSales.Cents())
		_, hasEWallet := summary.ByMethod["EWallet"]
		assert.False(t, hasEWallet)
	})
}

func TestSummarizeWalksAllPages(t *testing.T) {
	repo := newFakeSaleRepo()
	day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 250; i++ {
		require.NoError(t, repo.Create(context.Background(), &entity.Sale{
			ReceiptNo:     fmt.Sprintf("R20250501000000-%08d", i),
			SaleDate:      day,
			PaymentMethod: enum.PaymentMethodCash,
			Total:         money.FromCents(100),
		}))
	}
	service := NewReportService(repo)

	summary, err := service.Summarize(context.Background(), nil, nil, nil)
	require.NoError(t, err)

	// 250 sales at 1.00 each across three pages of 100.
	assert.Equal(t, int64(250), summary.SaleCount)
	assert.Equal(t, int64(25000), summary.GrossSales.Cents())
}
