package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	"github.com/wairimud/dukabook-api/internal/domain/repository"
	"github.com/wairimud/dukabook-api/pkg/apperror"
	"github.com/wairimud/dukabook-api/pkg/pagination"
)

const invoiceNumberPrefix = "T"

// InvoiceService handles invoice creation and the line-item math around it
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
	}
}

// LineItemInput represents one line on a new invoice. Either ProductID or
// an explicit Name must be set; product lines snapshot the product's name,
// barcode, and price at creation time.
type LineItemInput struct {
	ProductID     *uuid.UUID
	Name          string
	Barcode       string
	Quantity      int
	Price         *decimal.Decimal
	VATPercentage decimal.Decimal
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	CustomerID    *uuid.UUID
	InvoiceDate   *time.Time
	DeliveredDate *time.Time
	LineItems     []LineItemInput
}

// NextInvoiceNumber returns the number the next invoice will be assigned
func (s *InvoiceService) NextInvoiceNumber(ctx context.Context) (string, error) {
	last, err := s.invoiceRepo.LastInvoiceNumber(ctx)
	if err != nil {
		return "", err
	}
	return nextSequentialNumber(last, invoiceNumberPrefix), nil
}

// CreateInvoice creates an invoice with its line items. The invoice number
// is assigned from the sequence at creation time and never reused.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	items := make([]entity.LineItem, 0, len(input.LineItems))
	for _, in := range input.LineItems {
		item, err := s.buildLineItem(ctx, &in)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	number, err := s.NextInvoiceNumber(ctx)
	if err != nil {
		return nil, err
	}

	invoiceDate := time.Now()
	if input.InvoiceDate != nil {
		invoiceDate = *input.InvoiceDate
	}

	invoice := &entity.Invoice{
		InvoiceNumber: number,
		InvoiceDate:   invoiceDate,
		DeliveredDate: input.DeliveredDate,
		CustomerID:    input.CustomerID,
		LineItems:     items,
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetByID(ctx, invoice.ID)
}

// buildLineItem resolves a line item input into a stored line. Product
// lines copy the product's name, barcode, and price; an explicit price on
// the input overrides the snapshot.
func (s *InvoiceService) buildLineItem(ctx context.Context, in *LineItemInput) (*entity.LineItem, error) {
	item := &entity.LineItem{
		Name:          in.Name,
		Barcode:       in.Barcode,
		Quantity:      in.Quantity,
		VATPercentage: in.VATPercentage,
	}
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	if in.ProductID != nil {
		product, err := s.productRepo.GetByID(ctx, *in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, apperror.NewNotFoundError("Product")
		}
		item.Name = product.Name
		item.Barcode = product.Barcode
		item.Price = product.Price
	}

	if in.Price != nil {
		item.Price = *in.Price
	}

	if item.Name == "" {
		return nil, apperror.NewBadRequestError("Line item needs a product or a name")
	}

	return item, nil
}

// GetInvoice retrieves an invoice with its line items and customer
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices lists invoices, optionally filtered by derived status and
// customer
func (s *InvoiceService) ListInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*pagination.PaginatedResult[entity.Invoice], error) {
	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateInvoiceInput represents the update invoice input. Line items are
// managed through UpdateLineItem, not here.
type UpdateInvoiceInput struct {
	ID                 uuid.UUID
	CustomerID         *uuid.UUID
	ClearCustomer      bool
	InvoiceDate        *time.Time
	DeliveredDate      *time.Time
	ClearDeliveredDate bool
}

// UpdateInvoice updates an invoice's customer and dates
func (s *InvoiceService) UpdateInvoice(ctx context.Context, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if input.ClearCustomer {
		invoice.CustomerID = nil
		invoice.Customer = nil
	} else if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		invoice.CustomerID = input.CustomerID
		invoice.Customer = customer
	}

	if input.InvoiceDate != nil {
		invoice.InvoiceDate = *input.InvoiceDate
	}
	if input.ClearDeliveredDate {
		invoice.DeliveredDate = nil
	} else if input.DeliveredDate != nil {
		invoice.DeliveredDate = input.DeliveredDate
	}

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

// DeleteInvoice deletes an invoice and its line items. The invoice number
// is not reclaimed; the sequence only moves forward.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	return s.invoiceRepo.Delete(ctx, id)
}

// UpdateLineItemInput represents the update line item input
type UpdateLineItemInput struct {
	ID            uuid.UUID
	Name          *string
	Barcode       *string
	Quantity      *int
	Price         *decimal.Decimal
	VATPercentage *decimal.Decimal
}

// UpdateLineItem updates a line item on an existing invoice. The invoice
// totals follow automatically since they are computed from the lines.
func (s *InvoiceService) UpdateLineItem(ctx context.Context, input *UpdateLineItemInput) (*entity.LineItem, error) {
	item, err := s.invoiceRepo.GetLineItem(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Line item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Barcode != nil {
		item.Barcode = *input.Barcode
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
		if item.Quantity < 1 {
			item.Quantity = 1
		}
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.VATPercentage != nil {
		item.VATPercentage = *input.VATPercentage
	}

	if err := s.invoiceRepo.UpdateLineItem(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}
