package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/tillworks/pos-api/internal/domain/enum"
	"github.com/tillworks/pos-api/pkg/money"
	"gorm.io/gorm"
)

// Sale is the immutable receipt of a completed settlement. It is created
// exactly once, appended to the sales log, and never updated afterwards.
// Only settled outcomes reach this table; a sale's totals are always >= 0.
type Sale struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo     string             `gorm:"size:100;uniqueIndex;not null" json:"receipt_no"`
	SaleDate      time.Time          `gorm:"type:date;not null;index" json:"sale_date"`
	PaymentMethod enum.PaymentMethod `gorm:"not null" json:"payment_method"`
	LineCount     int                `gorm:"not null" json:"line_count"`
	SubTotal      money.Money        `gorm:"not null" json:"sub_total"`
	Discount      money.Money        `gorm:"not null" json:"discount"`
	Tax           money.Money        `gorm:"not null" json:"tax"`
	Total         money.Money        `gorm:"not null" json:"total"`
	Tendered      money.Money        `gorm:"not null" json:"tendered"`
	Change        money.Money        `gorm:"not null" json:"change"`
	CashierID     *uuid.UUID         `gorm:"type:uuid;index" json:"cashier_id,omitempty"`
	TableNo       *int               `json:"table_no,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`

	// Relationships
	Lines []SaleLine `gorm:"foreignKey:SaleID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before appending a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// Outcome reconstructs the settled payment outcome recorded on the receipt.
func (s *Sale) Outcome() PaymentOutcome {
	return PaymentOutcome{
		Status:   enum.OutcomeSettled,
		TotalDue: s.Total,
		Tendered: s.Tendered,
		Change:   s.Change,
	}
}

// SaleLine is one cart line frozen onto a receipt, in submission order.
type SaleLine struct {
	ID        uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	SaleID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"sale_id"`
	LineNo    int         `gorm:"not null" json:"line_no"`
	ItemCode  string      `gorm:"size:100;not null" json:"item_code"`
	Name      string      `gorm:"size:255;not null" json:"name"`
	UnitPrice money.Money `gorm:"not null" json:"unit_price"`
	Quantity  int         `gorm:"not null" json:"quantity"`
	LineTotal money.Money `gorm:"not null" json:"line_total"`
	CreatedAt time.Time   `json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale line
func (l *SaleLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLine model
func (SaleLine) TableName() string {
	return "sale_lines"
}
