package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	infraRepo "github.com/wairimud/dukabook-api/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func newInventoryService(db *gorm.DB) *InventoryService {
	return NewInventoryService(infraRepo.NewInventoryRepository(db), infraRepo.NewProductRepository(db))
}

func seedProduct(t *testing.T, db *gorm.DB, name, barcode, price string) *entity.Product {
	product := &entity.Product{Name: name, Barcode: barcode, Price: decimal.RequireFromString(price)}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return product
}

func TestTotalStockSumsEntries(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInventoryService(db)
	ctx := context.Background()

	product := seedProduct(t, db, "Rice 5kg", "RC005", "8.50")

	if _, err := svc.AddInventory(ctx, &AddInventoryInput{ProductID: product.ID, UnitsPerCarton: 2, NumberOfCartons: 3}); err != nil {
		t.Fatalf("add inventory: %v", err)
	}
	if _, err := svc.AddInventory(ctx, &AddInventoryInput{ProductID: product.ID, UnitsPerCarton: 1, NumberOfCartons: 5}); err != nil {
		t.Fatalf("add inventory: %v", err)
	}

	total, err := svc.TotalStock(ctx, product.ID)
	if err != nil {
		t.Fatalf("total stock: %v", err)
	}
	if total != 11 {
		t.Fatalf("expected 11 units got %d", total)
	}
}

func TestLowStockThresholdIsStrict(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInventoryService(db)
	ctx := context.Background()

	// 2x3 + 1x5 = 11 units, at threshold 10 this is not low
	adequate := seedProduct(t, db, "Sugar 1kg", "SG001", "1.20")
	if _, err := svc.AddInventory(ctx, &AddInventoryInput{ProductID: adequate.ID, UnitsPerCarton: 2, NumberOfCartons: 3}); err != nil {
		t.Fatalf("add inventory: %v", err)
	}
	if _, err := svc.AddInventory(ctx, &AddInventoryInput{ProductID: adequate.ID, UnitsPerCarton: 1, NumberOfCartons: 5}); err != nil {
		t.Fatalf("add inventory: %v", err)
	}

	// 1x4 = 4 units, low
	low := seedProduct(t, db, "Salt 500g", "SL001", "0.80")
	if _, err := svc.AddInventory(ctx, &AddInventoryInput{ProductID: low.ID, UnitsPerCarton: 1, NumberOfCartons: 4}); err != nil {
		t.Fatalf("add inventory: %v", err)
	}

	products, err := svc.LowStockProducts(ctx, DefaultLowStockThreshold)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 low stock product got %d", len(products))
	}
	if products[0].ID != low.ID {
		t.Fatalf("expected %s to be low on stock, got %s", low.Name, products[0].Name)
	}
}

func TestLowStockIgnoresProductsWithoutEntries(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInventoryService(db)
	ctx := context.Background()

	seedProduct(t, db, "Never Stocked", "NS001", "3.00")

	products, err := svc.LowStockProducts(ctx, DefaultLowStockThreshold)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(products) != 0 {
		t.Fatalf("expected no low stock products got %d", len(products))
	}
}

func TestInventorySummary(t *testing.T) {
	db := setupTestDB(t, t.Name())
	svc := newInventoryService(db)
	ctx := context.Background()

	first := seedProduct(t, db, "Flour 2kg", "FL002", "2.40")
	second := seedProduct(t, db, "Oil 1L", "OL001", "4.10")

	if _, err := svc.AddInventory(ctx, &AddInventoryInput{ProductID: first.ID, UnitsPerCarton: 12, NumberOfCartons: 2}); err != nil {
		t.Fatalf("add inventory: %v", err)
	}
	if _, err := svc.AddInventory(ctx, &AddInventoryInput{ProductID: first.ID, UnitsPerCarton: 6, NumberOfCartons: 1}); err != nil {
		t.Fatalf("add inventory: %v", err)
	}
	if _, err := svc.AddInventory(ctx, &AddInventoryInput{ProductID: second.ID, UnitsPerCarton: 1, NumberOfCartons: 5}); err != nil {
		t.Fatalf("add inventory: %v", err)
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalProducts != 2 {
		t.Fatalf("expected 2 products got %d", summary.TotalProducts)
	}
	if summary.TotalUnits != 35 {
		t.Fatalf("expected 35 units got %d", summary.TotalUnits)
	}
	if summary.LowStockCount != 1 {
		t.Fatalf("expected 1 low stock product got %d", summary.LowStockCount)
	}

	// Summarizing again must not change anything
	again, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if *again != *summary {
		t.Fatalf("summary changed between reads: %+v vs %+v", summary, again)
	}
}

func TestDeleteProductKeepsInventoryCounts(t *testing.T) {
	db := setupTestDB(t, t.Name())
	inventorySvc := newInventoryService(db)
	productSvc := NewProductService(infraRepo.NewProductRepository(db))
	ctx := context.Background()

	product := seedProduct(t, db, "Tea 250g", "TE001", "1.90")
	entry, err := inventorySvc.AddInventory(ctx, &AddInventoryInput{ProductID: product.ID, UnitsPerCarton: 10, NumberOfCartons: 2})
	if err != nil {
		t.Fatalf("add inventory: %v", err)
	}

	if err := productSvc.DeleteProduct(ctx, product.ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	kept, err := inventorySvc.GetInventory(ctx, entry.ID)
	if err != nil {
		t.Fatalf("get inventory: %v", err)
	}
	if kept.ProductID != nil {
		t.Fatalf("expected product reference cleared")
	}
	if kept.TotalUnits() != 20 {
		t.Fatalf("expected 20 units got %d", kept.TotalUnits())
	}

	// Orphaned entries still count toward the unit total but reference no product
	summary, err := inventorySvc.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalProducts != 0 {
		t.Fatalf("expected 0 products got %d", summary.TotalProducts)
	}
	if summary.TotalUnits != 20 {
		t.Fatalf("expected 20 units got %d", summary.TotalUnits)
	}
}
