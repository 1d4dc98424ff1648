package service

import (
	"context"
	"testing"

	infraRepo "github.com/wairimud/dukabook-api/internal/infrastructure/repository"
)

func TestCreateCustomerRequiresName(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewCustomerService(infraRepo.NewCustomerRepository(db))
	ctx := context.Background()

	if _, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "   "}); err == nil {
		t.Fatalf("expected error for blank name")
	}

	customer, err := svc.CreateCustomer(ctx, &CreateCustomerInput{
		Name:      "Grace Supplies",
		Email:     "grace@example.com",
		TRNNumber: "TRN-1001",
	})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	if customer.TRNNumber != "TRN-1001" {
		t.Fatalf("expected TRN kept, got %s", customer.TRNNumber)
	}
}

func TestUpdateCustomerPartialFields(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewCustomerService(infraRepo.NewCustomerRepository(db))
	ctx := context.Background()

	customer, err := svc.CreateCustomer(ctx, &CreateCustomerInput{Name: "Henry Duka", Branch: "Westlands"})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}

	contact := "+254700000001"
	updated, err := svc.UpdateCustomer(ctx, &UpdateCustomerInput{ID: customer.ID, ContactNumber: &contact})
	if err != nil {
		t.Fatalf("update customer: %v", err)
	}
	if updated.ContactNumber != contact {
		t.Fatalf("expected contact updated")
	}
	if updated.Branch != "Westlands" {
		t.Fatalf("expected branch untouched, got %s", updated.Branch)
	}
}

func TestCreateProductRequiresName(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := NewProductService(infraRepo.NewProductRepository(db))
	ctx := context.Background()

	if _, err := svc.CreateProduct(ctx, &CreateProductInput{Name: ""}); err == nil {
		t.Fatalf("expected error for blank name")
	}
}
