package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	infraRepo "github.com/wairimud/dukabook-api/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func newInvoiceService(db *gorm.DB) *InvoiceService {
	return NewInvoiceService(
		infraRepo.NewInvoiceRepository(db),
		infraRepo.NewCustomerRepository(db),
		infraRepo.NewProductRepository(db),
	)
}

func seedCustomer(t *testing.T, db *gorm.DB, name string) *entity.Customer {
	customer := &entity.Customer{Name: name}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return customer
}

func TestInvoiceNumberStartsAtOne(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInvoiceService(db)
	ctx := context.Background()

	number, err := svc.NextInvoiceNumber(ctx)
	if err != nil {
		t.Fatalf("next number: %v", err)
	}
	if number != "T1" {
		t.Fatalf("expected T1 got %s", number)
	}

	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if invoice.InvoiceNumber != "T1" {
		t.Fatalf("expected T1 got %s", invoice.InvoiceNumber)
	}
}

func TestInvoiceNumberFollowsHighestString(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInvoiceService(db)
	ctx := context.Background()

	// The sequence continues from the highest number under string
	// ordering, even when earlier invoices were deleted
	for _, number := range []string{"T1", "T3"} {
		inv := &entity.Invoice{InvoiceNumber: number, InvoiceDate: time.Now()}
		if err := db.Create(inv).Error; err != nil {
			t.Fatalf("seed invoice: %v", err)
		}
	}

	next, err := svc.NextInvoiceNumber(ctx)
	if err != nil {
		t.Fatalf("next number: %v", err)
	}
	if next != "T4" {
		t.Fatalf("expected T4 got %s", next)
	}
}

func TestLineItemSnapshotsProduct(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInvoiceService(db)
	productSvc := NewProductService(infraRepo.NewProductRepository(db))
	ctx := context.Background()

	product := seedProduct(t, db, "Tomato Ketchup", "SC001", "2.99")

	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		LineItems: []LineItemInput{
			{ProductID: &product.ID, Quantity: 2, VATPercentage: decimal.NewFromInt(15)},
		},
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	newName := "Chilli Sauce"
	newPrice := decimal.RequireFromString("3.49")
	if _, err := productSvc.UpdateProduct(ctx, &UpdateProductInput{ID: product.ID, Name: &newName, Price: &newPrice}); err != nil {
		t.Fatalf("update product: %v", err)
	}

	reloaded, err := svc.GetInvoice(ctx, invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if len(reloaded.LineItems) != 1 {
		t.Fatalf("expected 1 line item got %d", len(reloaded.LineItems))
	}
	item := reloaded.LineItems[0]
	if item.Name != "Tomato Ketchup" {
		t.Fatalf("expected snapshotted name, got %s", item.Name)
	}
	if item.Price.String() != "2.99" {
		t.Fatalf("expected snapshotted price, got %s", item.Price.String())
	}
}

func TestLineItemQuantityClampedToOne(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInvoiceService(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Dish Soap", "DS001", "1.10")

	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		LineItems: []LineItemInput{
			{ProductID: &product.ID, Quantity: 0},
		},
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if invoice.LineItems[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1 got %d", invoice.LineItems[0].Quantity)
	}

	negative := -3
	item, err := svc.UpdateLineItem(ctx, &UpdateLineItemInput{ID: invoice.LineItems[0].ID, Quantity: &negative})
	if err != nil {
		t.Fatalf("update line item: %v", err)
	}
	if item.Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1 got %d", item.Quantity)
	}
}

func TestDeleteInvoiceRemovesLineItems(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInvoiceService(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Bleach 1L", "BL001", "2.20")
	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{
		LineItems: []LineItemInput{{ProductID: &product.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	if err := svc.DeleteInvoice(ctx, invoice.ID); err != nil {
		t.Fatalf("delete invoice: %v", err)
	}

	var count int64
	if err := db.Model(&entity.LineItem{}).Where("invoice_id = ?", invoice.ID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected line items removed, %d remain", count)
	}

	// The consumed number is never reissued
	next, err := svc.NextInvoiceNumber(ctx)
	if err != nil {
		t.Fatalf("next number: %v", err)
	}
	if next != "T2" {
		t.Fatalf("expected T2 got %s", next)
	}
}

func TestUpdateInvoiceDeliveredDate(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInvoiceService(db)
	ctx := context.Background()

	customer := seedCustomer(t, db, "Alice Traders")
	invoice, err := svc.CreateInvoice(ctx, &CreateInvoiceInput{CustomerID: &customer.ID})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	if invoice.Status(time.Now()) != entity.InvoiceStatusDraft {
		t.Fatalf("expected draft status")
	}

	past := time.Now().Add(-24 * time.Hour)
	updated, err := svc.UpdateInvoice(ctx, &UpdateInvoiceInput{ID: invoice.ID, DeliveredDate: &past})
	if err != nil {
		t.Fatalf("update invoice: %v", err)
	}
	if updated.Status(time.Now()) != entity.InvoiceStatusOverdue {
		t.Fatalf("expected overdue status")
	}

	cleared, err := svc.UpdateInvoice(ctx, &UpdateInvoiceInput{ID: invoice.ID, ClearDeliveredDate: true})
	if err != nil {
		t.Fatalf("update invoice: %v", err)
	}
	if cleared.Status(time.Now()) != entity.InvoiceStatusDraft {
		t.Fatalf("expected draft status after clearing delivered date")
	}
}
