package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	domainRepo "github.com/wairimud/dukabook-api/internal/domain/repository"
	"github.com/wairimud/dukabook-api/pkg/pagination"
	"gorm.io/gorm"
)

type paymentReceiptRepository struct {
	db *gorm.DB
}

// NewPaymentReceiptRepository creates a new payment receipt repository
func NewPaymentReceiptRepository(db *gorm.DB) domainRepo.PaymentReceiptRepository {
	return &paymentReceiptRepository{db: db}
}

// CreateWithInvoices persists the receipt and links the invoices in one
// transaction. If anything fails, no receipt row exists and no number is
// consumed.
func (r *paymentReceiptRepository) CreateWithInvoices(ctx context.Context, receipt *entity.PaymentReceipt, invoiceIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(receipt).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Invoice{}).
			Where("id IN ?", invoiceIDs).
			Update("payment_receipt_id", receipt.ID).Error
	})
}

func (r *paymentReceiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PaymentReceipt, error) {
	var receipt entity.PaymentReceipt
	err := r.db.WithContext(ctx).
		Preload("Invoices").Preload("Invoices.LineItems").Preload("Invoices.Customer").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *paymentReceiptRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.PaymentReceipt, int64, error) {
	var receipts []entity.PaymentReceipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PaymentReceipt{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Invoices").
		Order("payment_date DESC").
		Find(&receipts).Error

	return receipts, total, err
}

func (r *paymentReceiptRepository) LastReceiptNumber(ctx context.Context) (string, error) {
	var receipt entity.PaymentReceipt
	err := r.db.WithContext(ctx).
		Order("receipt_number DESC").
		First(&receipt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return receipt.ReceiptNumber, err
}
