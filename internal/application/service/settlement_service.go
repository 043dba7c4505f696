package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/pkg/apperror"
	"github.com/tillworks/pos-api/pkg/money"
	"github.com/tillworks/pos-api/pkg/utils"
)

// timeNow is swapped out in tests that pin the clock.
var timeNow = time.Now

// startOfDay returns midnight of t's calendar day in t's own location.
// Truncating to 24h would snap to UTC day boundaries and mis-date sales
// on terminals running in other timezones.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SettlementService orchestrates a sale from priced cart to committed
// receipt. The contract is two-phase: nothing is persisted until pricing
// and payment both succeed, and once the sale is committed it is never
// rolled back. Stock deduction runs after commit; its failures surface as
// warnings on the result, not as errors.
type SettlementService struct {
	pricing   *PricingEngine
	payments  *PaymentRegistry
	stock     *StockDeductor
	saleRepo  repository.SaleRepository
	tableRepo repository.TableRepository
	printer   *PrinterService

	defaultDiscountRate decimal.Decimal
	defaultTaxRate      decimal.Decimal
}

// NewSettlementService creates a new settlement service. The printer may be
// nil when receipt printing is disabled.
func NewSettlementService(
	pricing *PricingEngine,
	payments *PaymentRegistry,
	stock *StockDeductor,
	saleRepo repository.SaleRepository,
	tableRepo repository.TableRepository,
	printer *PrinterService,
	defaultDiscountRate decimal.Decimal,
	defaultTaxRate decimal.Decimal,
) *SettlementService {
	return &SettlementService{
		pricing:             pricing,
		payments:            payments,
		stock:               stock,
		saleRepo:            saleRepo,
		tableRepo:           tableRepo,
		printer:             printer,
		defaultDiscountRate: defaultDiscountRate,
		defaultTaxRate:      defaultTaxRate,
	}
}

// SettleOrderInput represents one settlement attempt
type SettleOrderInput struct {
	Lines         []entity.CartLine
	PaymentMethod string
	Tendered      money.Money
	DiscountRate  *decimal.Decimal // nil means the terminal default
	TaxRate       *decimal.Decimal // nil means the terminal default
	CashierID     *uuid.UUID
	TableNo       *int
}

// SettlementResult is the full outcome of a settlement attempt. Sale is nil
// unless the attempt committed.
type SettlementResult struct {
	Status   enum.SettlementStatus `json:"status"`
	Totals   entity.Totals         `json:"totals"`
	Outcome  entity.PaymentOutcome `json:"outcome"`
	Sale     *entity.Sale          `json:"sale,omitempty"`
	Warnings []entity.StockWarning `json:"warnings,omitempty"`
}

// SettleOrder prices the cart, settles payment, and commits the sale.
//
// Validation failures (bad cart, bad rates, unknown payment method) return
// an error with no side effects. An insufficient-funds outcome is not an
// error: it returns a Rejected result so the terminal can re-prompt for
// payment. Once the sale row is written the attempt always reports
// Committed; ledger shortfalls only downgrade it to CommittedWithWarnings.
func (s *SettlementService) SettleOrder(ctx context.Context, input *SettleOrderInput) (*SettlementResult, error) {
	discountRate := s.defaultDiscountRate
	if input.DiscountRate != nil {
		discountRate = *input.DiscountRate
	}
	taxRate := s.defaultTaxRate
	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	}

	totals, err := s.pricing.ComputeTotals(input.Lines, discountRate, taxRate)
	if err != nil {
		return nil, err
	}

	method, err := enum.ParsePaymentMethod(input.PaymentMethod)
	if err != nil {
		return nil, err
	}

	strategy := s.payments.StrategyFor(method)
	if strategy == nil {
		return nil, apperror.NewUnprocessableError("No settlement strategy for method: " + method.String())
	}

	outcome := strategy.Settle(totals.TotalPayable, input.Tendered)
	if outcome.Status == enum.OutcomeInsufficientFunds {
		return &SettlementResult{
			Status:  enum.SettlementRejected,
			Totals:  totals,
			Outcome: outcome,
		}, nil
	}

	now := timeNow()
	sale := &entity.Sale{
		ReceiptNo:     utils.GenerateReceiptNo(now),
		SaleDate:      startOfDay(now),
		PaymentMethod: method,
		LineCount:     totals.LineCount,
		SubTotal:      totals.SubTotal,
		Discount:      totals.Discount,
		Tax:           totals.Tax,
		Total:         totals.TotalPayable,
		Tendered:      outcome.Tendered,
		Change:        outcome.Change,
		CashierID:     input.CashierID,
		TableNo:       input.TableNo,
	}
	for i, line := range input.Lines {
		sale.Lines = append(sale.Lines, entity.SaleLine{
			LineNo:    i + 1,
			ItemCode:  line.Code,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal(),
		})
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	// Point of no return: the receipt exists. Everything below is
	// best-effort and reported, never rolled back.
	warnings := s.stock.DeductForSale(ctx, input.Lines)

	if input.TableNo != nil {
		s.freeTable(ctx, *input.TableNo)
	}

	if s.printer != nil {
		if _, err := s.printer.PrintSaleReceipt(ctx, sale); err != nil {
			log.Printf("Receipt print failed for %s: %v", sale.ReceiptNo, err)
		}
	}

	status := enum.SettlementCommitted
	if len(warnings) > 0 {
		status = enum.SettlementCommittedWithWarnings
	}

	return &SettlementResult{
		Status:   status,
		Totals:   totals,
		Outcome:  outcome,
		Sale:     sale,
		Warnings: warnings,
	}, nil
}

// freeTable marks the table vacant after its order settles. Failures are
// logged; table state is floor bookkeeping, not part of the sale.
func (s *SettlementService) freeTable(ctx context.Context, tableNo int) {
	table, err := s.tableRepo.GetByNumber(ctx, tableNo)
	if err != nil || table == nil {
		if err != nil {
			log.Printf("Table %d lookup failed after settlement: %v", tableNo, err)
		}
		return
	}

	table.Status = enum.TableStatusVacant
	table.CurrentReceiptNo = nil
	if err := s.tableRepo.Update(ctx, table); err != nil {
		log.Printf("Failed to free table %d after settlement: %v", tableNo, err)
	}
}

// QuoteTotals prices a cart at the given or default rates without touching
// payment or storage.
func (s *SettlementService) QuoteTotals(lines []entity.CartLine, discountRate, taxRate *decimal.Decimal) (entity.Totals, error) {
	d := s.defaultDiscountRate
	if discountRate != nil {
		d = *discountRate
	}
	t := s.defaultTaxRate
	if taxRate != nil {
		t = *taxRate
	}
	return s.pricing.ComputeTotals(lines, d, t)
}
