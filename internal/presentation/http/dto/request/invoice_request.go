package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemRequest represents one line on a new invoice. When ProductID is
// set, name, barcode, and price are taken from the product; an explicit
// price overrides the snapshot.
type LineItemRequest struct {
	ProductID     *uuid.UUID       `json:"product_id"`
	Name          string           `json:"name"`
	Barcode       string           `json:"barcode"`
	Quantity      int              `json:"quantity"`
	Price         *decimal.Decimal `json:"price"`
	VATPercentage decimal.Decimal  `json:"vat_percentage"`
}

// CreateInvoiceRequest represents the create invoice request payload
type CreateInvoiceRequest struct {
	CustomerID    *uuid.UUID        `json:"customer_id"`
	InvoiceDate   *time.Time        `json:"invoice_date"`
	DeliveredDate *time.Time        `json:"delivered_date"`
	LineItems     []LineItemRequest `json:"line_items"`
}

// UpdateInvoiceRequest represents the update invoice request payload
type UpdateInvoiceRequest struct {
	CustomerID         *uuid.UUID `json:"customer_id"`
	ClearCustomer      bool       `json:"clear_customer"`
	InvoiceDate        *time.Time `json:"invoice_date"`
	DeliveredDate      *time.Time `json:"delivered_date"`
	ClearDeliveredDate bool       `json:"clear_delivered_date"`
}

// UpdateLineItemRequest represents the update line item request payload
type UpdateLineItemRequest struct {
	Name          *string          `json:"name"`
	Barcode       *string          `json:"barcode"`
	Quantity      *int             `json:"quantity"`
	Price         *decimal.Decimal `json:"price"`
	VATPercentage *decimal.Decimal `json:"vat_percentage"`
}

// GenerateReceiptRequest represents the generate receipt request payload
type GenerateReceiptRequest struct {
	CustomerID  uuid.UUID   `json:"customer_id" binding:"required"`
	InvoiceIDs  []uuid.UUID `json:"invoice_ids"`
	PaymentDate *time.Time  `json:"payment_date"`
}
