package database

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/wairimud/dukabook-api/internal/config"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Inventory{},
		&entity.Customer{},
		&entity.PaymentReceipt{},
		&entity.Invoice{},
		&entity.LineItem{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

// SeedAdminUser creates the operator account if it does not exist yet.
// The account is configured via ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdminUser(db *gorm.DB, cfg *config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		logrus.Warn("ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin account seed")
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", cfg.Email).First(&existing).Error; err == nil {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := entity.User{
		Name:     cfg.Name,
		Email:    cfg.Email,
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logrus.WithField("email", cfg.Email).Info("Admin account created")
	return nil
}

// SeedSampleData loads a small demo catalog with stock entries and
// customers. It is a no-op if any product already exists.
func SeedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logrus.Info("Seeding sample data...")

	products := []entity.Product{
		{Name: "Tomato Ketchup", Barcode: "SC001", Price: mustDecimal("2.99")},
		{Name: "Soy Sauce", Barcode: "SC002", Price: mustDecimal("3.49")},
		{Name: "Chocolate Chip Cookies", Barcode: "CK001", Price: mustDecimal("4.99")},
		{Name: "Peanut Butter Cookies", Barcode: "CK002", Price: mustDecimal("5.49")},
		{Name: "Hot Chili Sauce", Barcode: "SC003", Price: mustDecimal("3.99")},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	inventories := []entity.Inventory{
		{ProductID: &products[0].ID, UnitsPerCarton: 1, NumberOfCartons: 4},
		{ProductID: &products[1].ID, UnitsPerCarton: 12, NumberOfCartons: 15},
		{ProductID: &products[2].ID, UnitsPerCarton: 36, NumberOfCartons: 8},
		{ProductID: &products[3].ID, UnitsPerCarton: 36, NumberOfCartons: 5},
		{ProductID: &products[4].ID, UnitsPerCarton: 18, NumberOfCartons: 12},
	}
	if err := db.Create(&inventories).Error; err != nil {
		return fmt.Errorf("failed to seed inventory: %w", err)
	}

	customers := []entity.Customer{
		{Name: "Alice Doe", ContactNumber: "+1 555-0101", Email: "alice@example.com", TRNNumber: "123456789", Branch: "Downtown", Address: "1 Infinite Loop, Cupertino"},
		{Name: "Bob Smith", ContactNumber: "+1 555-0102", Email: "bob@example.com", TRNNumber: "987654321", Branch: "Uptown", Address: "500 Market St, San Francisco"},
		{Name: "Carol Johnson", ContactNumber: "+1 555-0103", Email: "carol@example.com", TRNNumber: "456789123", Branch: "Midtown", Address: "1600 Amphitheatre Pkwy, Mountain View"},
	}
	if err := db.Create(&customers).Error; err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}

	logrus.Info("Sample data seeding completed")
	return nil
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
