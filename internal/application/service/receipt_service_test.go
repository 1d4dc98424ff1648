package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	infraRepo "github.com/wairimud/dukabook-api/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func newReceiptService(db *gorm.DB) *ReceiptService {
	return NewReceiptService(
		infraRepo.NewPaymentReceiptRepository(db),
		infraRepo.NewInvoiceRepository(db),
		infraRepo.NewCustomerRepository(db),
	)
}

func seedInvoice(t *testing.T, db *gorm.DB, customerID uuid.UUID, number, price string, qty int) *entity.Invoice {
	invoice := &entity.Invoice{
		InvoiceNumber: number,
		InvoiceDate:   time.Now(),
		CustomerID:    &customerID,
		LineItems: []entity.LineItem{
			{Name: "Item", Quantity: qty, Price: decimal.RequireFromString(price)},
		},
	}
	if err := db.Create(invoice).Error; err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	return invoice
}

func TestGenerateReceiptSettlesInvoices(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newReceiptService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Bob Retail")
	first := seedInvoice(t, db, customer.ID, "T1", "10.00", 2)
	second := seedInvoice(t, db, customer.ID, "T2", "5.50", 1)

	receipt, err := svc.GenerateReceipt(ctx, &GenerateReceiptInput{
		CustomerID: customer.ID,
		InvoiceIDs: []uuid.UUID{first.ID, second.ID},
	})
	if err != nil {
		t.Fatalf("generate receipt: %v", err)
	}

	if receipt.ReceiptNumber != "R1" {
		t.Fatalf("expected R1 got %s", receipt.ReceiptNumber)
	}
	if receipt.TotalAmount.String() != "25.5" {
		t.Fatalf("expected total 25.5 got %s", receipt.TotalAmount.String())
	}
	if len(receipt.Invoices) != 2 {
		t.Fatalf("expected 2 settled invoices got %d", len(receipt.Invoices))
	}
	for _, inv := range receipt.Invoices {
		if inv.Status(time.Now()) != entity.InvoiceStatusPaid {
			t.Fatalf("expected invoice %s to be paid", inv.InvoiceNumber)
		}
	}
}

func TestGenerateReceiptRejectsEmptySelection(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newReceiptService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Carol Kiosk")

	if _, err := svc.GenerateReceipt(ctx, &GenerateReceiptInput{CustomerID: customer.ID}); err == nil {
		t.Fatalf("expected error for empty selection")
	}

	// A rejected request must not consume a receipt number
	first := seedInvoice(t, db, customer.ID, "T1", "4.00", 1)
	receipt, err := svc.GenerateReceipt(ctx, &GenerateReceiptInput{
		CustomerID: customer.ID,
		InvoiceIDs: []uuid.UUID{first.ID},
	})
	if err != nil {
		t.Fatalf("generate receipt: %v", err)
	}
	if receipt.ReceiptNumber != "R1" {
		t.Fatalf("expected R1 got %s", receipt.ReceiptNumber)
	}
}

func TestGenerateReceiptCountsDuplicateSelectionOnce(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newReceiptService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Ivy Grocers")
	invoice := seedInvoice(t, db, customer.ID, "T1", "10.00", 1)

	receipt, err := svc.GenerateReceipt(ctx, &GenerateReceiptInput{
		CustomerID: customer.ID,
		InvoiceIDs: []uuid.UUID{invoice.ID, invoice.ID},
	})
	if err != nil {
		t.Fatalf("generate receipt: %v", err)
	}

	if len(receipt.Invoices) != 1 {
		t.Fatalf("expected 1 settled invoice got %d", len(receipt.Invoices))
	}
	if receipt.TotalAmount.String() != "10" {
		t.Fatalf("expected total 10 got %s", receipt.TotalAmount.String())
	}
}

func TestGenerateReceiptRejectsForeignInvoice(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newReceiptService(db)
	ctx := context.Background()

	owner := seedCustomer(t, db, "Owner")
	other := seedCustomer(t, db, "Other")
	invoice := seedInvoice(t, db, owner.ID, "T1", "9.99", 1)

	if _, err := svc.GenerateReceipt(ctx, &GenerateReceiptInput{
		CustomerID: other.ID,
		InvoiceIDs: []uuid.UUID{invoice.ID},
	}); err == nil {
		t.Fatalf("expected error for foreign invoice")
	}
}

func TestGenerateReceiptRejectsPaidInvoice(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newReceiptService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Dina Stores")
	invoice := seedInvoice(t, db, customer.ID, "T1", "7.25", 2)

	if _, err := svc.GenerateReceipt(ctx, &GenerateReceiptInput{
		CustomerID: customer.ID,
		InvoiceIDs: []uuid.UUID{invoice.ID},
	}); err != nil {
		t.Fatalf("generate receipt: %v", err)
	}

	if _, err := svc.GenerateReceipt(ctx, &GenerateReceiptInput{
		CustomerID: customer.ID,
		InvoiceIDs: []uuid.UUID{invoice.ID},
	}); err == nil {
		t.Fatalf("expected error for already paid invoice")
	}
}

func TestReceiptNumberSequence(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newReceiptService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Eve Mart")

	for i, number := range []string{"T1", "T2", "T3"} {
		invoice := seedInvoice(t, db, customer.ID, number, "1.00", 1)
		receipt, err := svc.GenerateReceipt(ctx, &GenerateReceiptInput{
			CustomerID: customer.ID,
			InvoiceIDs: []uuid.UUID{invoice.ID},
		})
		if err != nil {
			t.Fatalf("generate receipt: %v", err)
		}
		want := []string{"R1", "R2", "R3"}[i]
		if receipt.ReceiptNumber != want {
			t.Fatalf("expected %s got %s", want, receipt.ReceiptNumber)
		}
	}
}

func TestOutstandingAmountExcludesPaid(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newReceiptService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Frank Wholesale")
	seedInvoice(t, db, customer.ID, "T1", "12.00", 1)
	paid := seedInvoice(t, db, customer.ID, "T2", "8.00", 1)

	if _, err := svc.GenerateReceipt(ctx, &GenerateReceiptInput{
		CustomerID: customer.ID,
		InvoiceIDs: []uuid.UUID{paid.ID},
	}); err != nil {
		t.Fatalf("generate receipt: %v", err)
	}

	outstanding, err := svc.OutstandingAmount(ctx, customer.ID)
	if err != nil {
		t.Fatalf("outstanding: %v", err)
	}
	if outstanding.String() != "12" {
		t.Fatalf("expected 12 outstanding got %s", outstanding.String())
	}
}
