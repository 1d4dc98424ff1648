package service

import (
	"fmt"
	"testing"

	"github.com/wairimud/dukabook-api/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Inventory{},
		&entity.Customer{},
		&entity.PaymentReceipt{},
		&entity.Invoice{},
		&entity.LineItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
