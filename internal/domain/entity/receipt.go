package entity

import "github.com/tillworks/pos-api/pkg/money"

// ReceiptHeader contains store information printed at the top of a receipt
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem is one printed line of a receipt
type ReceiptItem struct {
	Name      string      `json:"name"`
	Quantity  int         `json:"quantity"`
	UnitPrice money.Money `json:"unit_price"`
	Total     money.Money `json:"total"`
}

// Receipt is the printable rendering of a committed sale.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	ReceiptNo     string        `json:"receipt_no"`
	Date          string        `json:"date"`
	Cashier       string        `json:"cashier,omitempty"`
	TableNo       *int          `json:"table_no,omitempty"`
	PaymentMethod string        `json:"payment_method"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      money.Money   `json:"sub_total"`
	Discount      money.Money   `json:"discount"`
	Tax           money.Money   `json:"tax"`
	Total         money.Money   `json:"total"`
	Tendered      money.Money   `json:"tendered"`
	Change        money.Money   `json:"change"`
}
