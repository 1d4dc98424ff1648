package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/wairimud/dukabook-api/internal/application/service"
	"github.com/wairimud/dukabook-api/internal/config"
	"github.com/wairimud/dukabook-api/internal/infrastructure/database"
	"github.com/wairimud/dukabook-api/internal/infrastructure/repository"
	"github.com/wairimud/dukabook-api/internal/presentation/http/handler"
	"github.com/wairimud/dukabook-api/internal/presentation/http/routes"
	"github.com/wairimud/dukabook-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Configure logging
	if cfg.App.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed the operator account
	if err := database.SeedAdminUser(db, &cfg.Admin); err != nil {
		logrus.WithError(err).Warn("Failed to seed admin user")
	}

	// Seed sample catalog data when enabled
	if cfg.App.SeedSampleData {
		if err := database.SeedSampleData(db); err != nil {
			logrus.WithError(err).Warn("Failed to seed sample data")
		}
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	receiptRepo := repository.NewPaymentReceiptRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, productRepo)
	customerService := service.NewCustomerService(customerRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo, productRepo)
	receiptService := service.NewReceiptService(receiptRepo, invoiceRepo, customerRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Product:   handler.NewProductHandler(productService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Customer:  handler.NewCustomerHandler(customerService, receiptService),
		Invoice:   handler.NewInvoiceHandler(invoiceService),
		Receipt:   handler.NewReceiptHandler(receiptService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logrus.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"env":     cfg.App.Env,
		"port":    port,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
