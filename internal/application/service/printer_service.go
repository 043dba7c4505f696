package service

import (
	"context"
	"fmt"

	"github.com/tillworks/pos-api/internal/domain/entity"
	"github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/pkg/apperror"
	"github.com/tillworks/pos-api/pkg/money"
	"github.com/tillworks/pos-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	saleRepo    repository.SaleRepository
	printerType string
	width       int
	storeName   string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	saleRepo repository.SaleRepository,
	printerType string,
	width int,
	storeName string,
) *PrinterService {
	if width <= 0 {
		width = 42
	}
	return &PrinterService{
		printer:     p,
		saleRepo:    saleRepo,
		printerType: printerType,
		width:       width,
		storeName:   storeName,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
		},
		ReceiptNo:     "TEST-001",
		Date:          "Test Date",
		Cashier:       "System",
		PaymentMethod: "Cash",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: money.FromCents(1000), Total: money.FromCents(1000)},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: money.FromCents(500), Total: money.FromCents(1000)},
		},
		SubTotal: money.FromCents(2000),
		Total:    money.FromCents(2000),
		Tendered: money.FromCents(2000),
	}

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintSaleReceipt renders an already loaded sale and prints it.
func (s *PrinterService) PrintSaleReceipt(ctx context.Context, sale *entity.Sale) (*entity.Receipt, error) {
	receipt := s.BuildReceipt(sale)

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// ReprintReceipt fetches a sale by receipt number and prints it again.
func (s *PrinterService) ReprintReceipt(ctx context.Context, receiptNo string) (*entity.Receipt, error) {
	sale, err := s.saleRepo.GetByReceiptNo(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return s.PrintSaleReceipt(ctx, sale)
}

// BuildReceipt converts a sale into its printable form.
func (s *PrinterService) BuildReceipt(sale *entity.Sale) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: s.storeName,
		},
		ReceiptNo:     sale.ReceiptNo,
		Date:          sale.CreatedAt.Format("2006-01-02 15:04"),
		TableNo:       sale.TableNo,
		PaymentMethod: sale.PaymentMethod.String(),
		SubTotal:      sale.SubTotal,
		Discount:      sale.Discount,
		Tax:           sale.Tax,
		Total:         sale.Total,
		Tendered:      sale.Tendered,
		Change:        sale.Change,
	}

	for _, l := range sale.Lines {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.LineTotal,
		})
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.StoreName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		doc.TextF("Tax ID: %s", r.Header.TaxID)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Receipt info
	doc.KeyValue("Receipt:", r.ReceiptNo).
		KeyValue("Date:", r.Date)

	if r.Cashier != "" {
		doc.KeyValue("Cashier:", r.Cashier)
	}
	if r.TableNo != nil {
		doc.KeyValue("Table:", fmt.Sprintf("%d", *r.TableNo))
	}
	if r.PaymentMethod != "" {
		doc.KeyValue("Payment:", r.PaymentMethod)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, item.Total.String())
		if item.Quantity > 1 {
			doc.TextF("  @ %s each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", r.SubTotal.String())
	if !r.Discount.IsZero() {
		doc.KeyValue("Discount:", "-"+r.Discount.String())
	}
	if !r.Tax.IsZero() {
		doc.KeyValue("Tax:", r.Tax.String())
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", r.Total.String()).
		SetBold(false)

	doc.KeyValue("Tendered:", r.Tendered.String())
	if !r.Change.IsZero() {
		doc.KeyValue("Change:", r.Change.String())
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, come again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
