package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	"github.com/wairimud/dukabook-api/pkg/pagination"
)

// InvoiceFilterParams contains filtering parameters for invoice queries.
// Status filters translate the derived status into a predicate over the
// stored columns; nothing about status is ever persisted.
type InvoiceFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *entity.InvoiceStatus
	CustomerID *uuid.UUID
}

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create persists the invoice together with its line items.
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete removes the invoice and its owned line items in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	// ListByCustomer returns a customer's invoices with line items preloaded.
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Invoice, error)
	// LastInvoiceNumber returns the highest invoice number under string
	// ordering, or "" when no invoice exists.
	LastInvoiceNumber(ctx context.Context) (string, error)
	GetLineItem(ctx context.Context, id uuid.UUID) (*entity.LineItem, error)
	UpdateLineItem(ctx context.Context, item *entity.LineItem) error
}

// PaymentReceiptRepository defines the interface for payment receipt operations
type PaymentReceiptRepository interface {
	// CreateWithInvoices persists the receipt and links the given invoices
	// to it atomically; linking is what flips their status to paid.
	CreateWithInvoices(ctx context.Context, receipt *entity.PaymentReceipt, invoiceIDs []uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentReceipt, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.PaymentReceipt, int64, error)
	// LastReceiptNumber returns the highest receipt number under string
	// ordering, or "" when no receipt exists.
	LastReceiptNumber(ctx context.Context) (string, error)
}
