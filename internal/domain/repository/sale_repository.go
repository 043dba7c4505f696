package repository

import (
	"context"
	"time"

	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/pkg/pagination"
)

// SaleRepository is the append-only sales log. Sales are created exactly
// once and never updated or deleted; a receipt number collision is a
// storage error, not a recoverable condition.
type SaleRepository interface {
	// Create appends a sale and its lines in one transaction.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
}

// SaleFilterParams contains filtering parameters for sales log queries.
// Date and Month are mutually exclusive report slices.
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Date       *time.Time          // exact calendar date
	Month      *string             // "YYYY-MM"
	Method     *enum.PaymentMethod // already parsed by the service layer
}
