package service

import (
	"context"
	"time"

	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/pkg/apperror"
	"github.com/tillworks/pos-api/pkg/money"
	"github.com/tillworks/pos-api/pkg/pagination"
)

// ReportService answers read-only questions about the sales log.
type ReportService struct {
	saleRepo repository.SaleRepository
}

// NewReportService creates a new report service
func NewReportService(saleRepo repository.SaleRepository) *ReportService {
	return &ReportService{saleRepo: saleRepo}
}

// ListSales lists sales with filtering, newest first.
func (s *ReportService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// GetSale retrieves one sale by its receipt number
func (s *ReportService) GetSale(ctx context.Context, receiptNo string) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetByReceiptNo(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// SalesSummary aggregates a slice of the sales log.
type SalesSummary struct {
	SaleCount     int64                  `json:"sale_count"`
	GrossSales    money.Money            `json:"gross_sales"`
	TotalDiscount money.Money            `json:"total_discount"`
	TotalTax      money.Money            `json:"total_tax"`
	ByMethod      map[string]money.Money `json:"by_method"`
}

// Summarize totals every sale matching the filter. It walks the full slice
// page by page so the summary is not capped by one page size.
func (s *ReportService) Summarize(ctx context.Context, date *time.Time, month *string, method *enum.PaymentMethod) (*SalesSummary, error) {
	summary := &SalesSummary{ByMethod: make(map[string]money.Money)}

	params := &repository.SaleFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 100},
		Date:       date,
		Month:      month,
		Method:     method,
	}

	for {
		sales, total, err := s.saleRepo.List(ctx, params)
		if err != nil {
			return nil, err
		}

		summary.SaleCount = total
		for _, sale := range sales {
			summary.GrossSales = summary.GrossSales.Add(sale.Total)
			summary.TotalDiscount = summary.TotalDiscount.Add(sale.Discount)
			summary.TotalTax = summary.TotalTax.Add(sale.Tax)
			key := sale.PaymentMethod.String()
			summary.ByMethod[key] = summary.ByMethod[key].Add(sale.Total)
		}

		if int64(params.Pagination.Page*params.Pagination.PerPage) >= total {
			break
		}
		params.Pagination.Page++
	}

	return summary, nil
}
