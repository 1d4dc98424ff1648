package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceStatus is derived at read time from the invoice's data; it is
// never stored. An invoice is paid once a payment receipt references it,
// overdue once its delivered date has passed, and draft otherwise.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice represents a sales invoice with its owned line items
type Invoice struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber    string         `gorm:"size:100;unique;not null" json:"invoice_number"`
	InvoiceDate      time.Time      `gorm:"not null" json:"invoice_date"`
	DeliveredDate    *time.Time     `json:"delivered_date,omitempty"`
	CustomerID       *uuid.UUID     `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	PaymentReceiptID *uuid.UUID     `gorm:"type:uuid;index" json:"payment_receipt_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer  *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	LineItems []LineItem `gorm:"foreignKey:InvoiceID" json:"line_items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// SubTotal sums price x quantity over the line items
func (i *Invoice) SubTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.LineItems {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// TotalVAT sums the VAT amounts over the line items
func (i *Invoice) TotalVAT() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.LineItems {
		total = total.Add(item.VATAmount())
	}
	return total
}

// TotalAmount is the subtotal plus total VAT
func (i *Invoice) TotalAmount() decimal.Decimal {
	return i.SubTotal().Add(i.TotalVAT())
}

// Status evaluates the invoice state at the given time. A linked payment
// receipt wins over an elapsed delivered date.
func (i *Invoice) Status(now time.Time) InvoiceStatus {
	if i.PaymentReceiptID != nil {
		return InvoiceStatusPaid
	}
	if i.DeliveredDate != nil && now.After(*i.DeliveredDate) {
		return InvoiceStatusOverdue
	}
	return InvoiceStatusDraft
}

// MarshalJSON includes the derived totals and status in API responses
func (i Invoice) MarshalJSON() ([]byte, error) {
	type Alias Invoice
	return json.Marshal(&struct {
		Alias
		SubTotal    decimal.Decimal `json:"sub_total"`
		TotalVAT    decimal.Decimal `json:"total_vat"`
		TotalAmount decimal.Decimal `json:"total_amount"`
		Status      InvoiceStatus   `json:"status"`
	}{
		Alias:       Alias(i),
		SubTotal:    i.SubTotal(),
		TotalVAT:    i.TotalVAT(),
		TotalAmount: i.TotalAmount(),
		Status:      i.Status(time.Now()),
	})
}

// LineItem represents one product line on an invoice. Name, barcode, and
// price are copied from the product when the line is created, so later
// product edits do not rewrite historical invoices.
type LineItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID     *uuid.UUID      `gorm:"type:uuid;index" json:"invoice_id,omitempty"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Barcode       string          `gorm:"size:100" json:"barcode"`
	Quantity      int             `gorm:"default:1" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:numeric(20,4);default:0" json:"price"`
	VATPercentage decimal.Decimal `gorm:"type:numeric(20,4);default:0" json:"vat_percentage"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (l *LineItem) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}

// VATAmount is price x quantity x vatPercentage / 100
func (l *LineItem) VATAmount() decimal.Decimal {
	return l.Price.
		Mul(decimal.NewFromInt(int64(l.Quantity))).
		Mul(l.VATPercentage).
		Div(decimal.NewFromInt(100))
}

// Amount is the pre-tax line amount plus its VAT
func (l *LineItem) Amount() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).Add(l.VATAmount())
}

// MarshalJSON includes the derived VAT and line amounts in API responses
func (l LineItem) MarshalJSON() ([]byte, error) {
	type Alias LineItem
	return json.Marshal(&struct {
		Alias
		VATAmount decimal.Decimal `json:"vat_amount"`
		Amount    decimal.Decimal `json:"amount"`
	}{
		Alias:     Alias(l),
		VATAmount: l.VATAmount(),
		Amount:    l.Amount(),
	})
}
