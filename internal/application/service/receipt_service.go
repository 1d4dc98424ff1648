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

const receiptNumberPrefix = "R"

// ReceiptService handles payment receipt generation
type ReceiptService struct {
	receiptRepo  repository.PaymentReceiptRepository
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.PaymentReceiptRepository,
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo:  receiptRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}
}

// GenerateReceiptInput represents the generate receipt input
type GenerateReceiptInput struct {
	CustomerID  uuid.UUID
	InvoiceIDs  []uuid.UUID
	PaymentDate *time.Time
}

// GenerateReceipt settles the selected invoices under a new receipt. All
// selected invoices must belong to the customer and must not already be
// paid; validation happens before a receipt number is taken, so a rejected
// request consumes nothing from the sequence.
func (s *ReceiptService) GenerateReceipt(ctx context.Context, input *GenerateReceiptInput) (*entity.PaymentReceipt, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if len(input.InvoiceIDs) == 0 {
		return nil, apperror.NewBadRequestError("Select at least one invoice to settle")
	}

	// An invoice selected twice settles once; the snapshot total must
	// match the set of invoices that end up linked.
	invoiceIDs := make([]uuid.UUID, 0, len(input.InvoiceIDs))
	seen := make(map[uuid.UUID]struct{}, len(input.InvoiceIDs))
	for _, id := range input.InvoiceIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		invoiceIDs = append(invoiceIDs, id)
	}

	now := time.Now()
	total := decimal.Zero
	for _, id := range invoiceIDs {
		invoice, err := s.invoiceRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if invoice == nil {
			return nil, apperror.NewNotFoundError("Invoice")
		}
		if invoice.CustomerID == nil || *invoice.CustomerID != input.CustomerID {
			return nil, apperror.NewUnprocessableError("Invoice " + invoice.InvoiceNumber + " does not belong to this customer")
		}
		if invoice.Status(now) == entity.InvoiceStatusPaid {
			return nil, apperror.NewUnprocessableError("Invoice " + invoice.InvoiceNumber + " is already paid")
		}
		total = total.Add(invoice.TotalAmount())
	}

	last, err := s.receiptRepo.LastReceiptNumber(ctx)
	if err != nil {
		return nil, err
	}

	paymentDate := now
	if input.PaymentDate != nil {
		paymentDate = *input.PaymentDate
	}

	receipt := &entity.PaymentReceipt{
		ReceiptNumber: nextSequentialNumber(last, receiptNumberPrefix),
		TotalAmount:   total,
		PaymentDate:   paymentDate,
	}

	if err := s.receiptRepo.CreateWithInvoices(ctx, receipt, invoiceIDs); err != nil {
		return nil, err
	}

	return s.receiptRepo.GetByID(ctx, receipt.ID)
}

// GetReceipt retrieves a receipt with its settled invoices
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.PaymentReceipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Payment receipt")
	}
	return receipt, nil
}

// ListReceipts lists payment receipts
func (s *ReceiptService) ListReceipts(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.PaymentReceipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// OutstandingAmount sums the totals of a customer's unpaid invoices
func (s *ReceiptService) OutstandingAmount(ctx context.Context, customerID uuid.UUID) (decimal.Decimal, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}
	if customer == nil {
		return decimal.Zero, apperror.NewNotFoundError("Customer")
	}

	invoices, err := s.invoiceRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return decimal.Zero, err
	}

	now := time.Now()
	total := decimal.Zero
	for i := range invoices {
		if invoices[i].Status(now) != entity.InvoiceStatusPaid {
			total = total.Add(invoices[i].TotalAmount())
		}
	}
	return total, nil
}
