package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentReceipt marks a set of invoices as paid. It holds non-owning
// references to the invoices and snapshots the amount collected at
// generation time; the invoices survive if the receipt row ever goes away.
type PaymentReceipt struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNumber string          `gorm:"size:100;unique;not null" json:"receipt_number"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(20,4);default:0" json:"total_amount"`
	PaymentDate   time.Time       `gorm:"not null" json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Invoices []Invoice `gorm:"foreignKey:PaymentReceiptID" json:"invoices,omitempty"`
}

// BeforeCreate generates a UUID before creating a new payment receipt
func (r *PaymentReceipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PaymentReceipt model
func (PaymentReceipt) TableName() string {
	return "payment_receipts"
}
