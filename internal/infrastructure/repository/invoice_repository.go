package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	domainRepo "github.com/wairimud/dukabook-api/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	// Line items are created through the association in the same insert.
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Customer").Preload("LineItems").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

// Delete removes the invoice together with the line items it owns.
func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.LineItem{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Invoice{}, "id = ?", id).Error
	})
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if params.Status != nil {
		query = applyStatusFilter(query, *params.Status, time.Now())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").Preload("LineItems").
		Order("invoice_date DESC").
		Find(&invoices).Error

	return invoices, total, err
}

// applyStatusFilter expresses the derived invoice status as a predicate
// over the stored columns, keeping recompute-on-read semantics in SQL.
func applyStatusFilter(query *gorm.DB, status entity.InvoiceStatus, now time.Time) *gorm.DB {
	switch status {
	case entity.InvoiceStatusPaid:
		return query.Where("payment_receipt_id IS NOT NULL")
	case entity.InvoiceStatusOverdue:
		return query.Where("payment_receipt_id IS NULL AND delivered_date IS NOT NULL AND delivered_date < ?", now)
	default:
		return query.Where("payment_receipt_id IS NULL AND (delivered_date IS NULL OR delivered_date >= ?)", now)
	}
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Preload("LineItems").
		Order("invoice_date DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) LastInvoiceNumber(ctx context.Context) (string, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Order("invoice_number DESC").
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return invoice.InvoiceNumber, err
}

func (r *invoiceRepository) GetLineItem(ctx context.Context, id uuid.UUID) (*entity.LineItem, error) {
	var item entity.LineItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *invoiceRepository) UpdateLineItem(ctx context.Context, item *entity.LineItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}
