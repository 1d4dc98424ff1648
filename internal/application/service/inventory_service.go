package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	"github.com/wairimud/dukabook-api/internal/domain/repository"
	"github.com/wairimud/dukabook-api/pkg/apperror"
	"github.com/wairimud/dukabook-api/pkg/pagination"
)

// DefaultLowStockThreshold is the unit count below which a product is
// considered low on stock.
const DefaultLowStockThreshold = 10

// InventoryService handles stock entries and their aggregations
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
	productRepo   repository.ProductRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository, productRepo repository.ProductRepository) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
		productRepo:   productRepo,
	}
}

// AddInventoryInput represents the add inventory input
type AddInventoryInput struct {
	ProductID       uuid.UUID
	UnitsPerCarton  int
	NumberOfCartons int
}

// AddInventory creates a stock entry for a product. A product may have any
// number of entries; they add up rather than overwrite each other.
func (s *InventoryService) AddInventory(ctx context.Context, input *AddInventoryInput) (*entity.Inventory, error) {
	if input.UnitsPerCarton < 0 || input.NumberOfCartons < 0 {
		return nil, apperror.NewBadRequestError("Carton counts cannot be negative")
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	inventory := &entity.Inventory{
		ProductID:       &product.ID,
		UnitsPerCarton:  input.UnitsPerCarton,
		NumberOfCartons: input.NumberOfCartons,
	}

	if err := s.inventoryRepo.Create(ctx, inventory); err != nil {
		return nil, err
	}
	inventory.Product = product

	return inventory, nil
}

// GetInventory retrieves a stock entry by ID
func (s *InventoryService) GetInventory(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inventory == nil {
		return nil, apperror.NewNotFoundError("Inventory entry")
	}
	return inventory, nil
}

// ListInventories lists stock entries
func (s *InventoryService) ListInventories(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Inventory], error) {
	inventories, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(inventories, pag), nil
}

// UpdateInventoryInput represents the update inventory input
type UpdateInventoryInput struct {
	ID              uuid.UUID
	UnitsPerCarton  *int
	NumberOfCartons *int
}

// UpdateInventory updates the carton counts of a stock entry
func (s *InventoryService) UpdateInventory(ctx context.Context, input *UpdateInventoryInput) (*entity.Inventory, error) {
	inventory, err := s.inventoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if inventory == nil {
		return nil, apperror.NewNotFoundError("Inventory entry")
	}

	if input.UnitsPerCarton != nil {
		if *input.UnitsPerCarton < 0 {
			return nil, apperror.NewBadRequestError("Carton counts cannot be negative")
		}
		inventory.UnitsPerCarton = *input.UnitsPerCarton
	}
	if input.NumberOfCartons != nil {
		if *input.NumberOfCartons < 0 {
			return nil, apperror.NewBadRequestError("Carton counts cannot be negative")
		}
		inventory.NumberOfCartons = *input.NumberOfCartons
	}

	if err := s.inventoryRepo.Update(ctx, inventory); err != nil {
		return nil, err
	}

	return inventory, nil
}

// DeleteInventory deletes a stock entry
func (s *InventoryService) DeleteInventory(ctx context.Context, id uuid.UUID) error {
	inventory, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if inventory == nil {
		return apperror.NewNotFoundError("Inventory entry")
	}

	return s.inventoryRepo.Delete(ctx, id)
}

// TotalStock sums the units of every stock entry referencing the product
func (s *InventoryService) TotalStock(ctx context.Context, productID uuid.UUID) (int, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, apperror.NewNotFoundError("Product")
	}

	entries, err := s.inventoryRepo.ListByProduct(ctx, productID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, e := range entries {
		total += e.TotalUnits()
	}
	return total, nil
}

// LowStockProducts groups stock entries by product, sums their units, and
// returns the products whose total is strictly below the threshold.
// A product with no entries at all never appears here: it has nothing to
// group on.
func (s *InventoryService) LowStockProducts(ctx context.Context, threshold int) ([]entity.Product, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	inventories, err := s.inventoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return lowStockProducts(inventories, threshold), nil
}

func lowStockProducts(inventories []entity.Inventory, threshold int) []entity.Product {
	stock := make(map[uuid.UUID]int)
	byID := make(map[uuid.UUID]*entity.Product)
	for i := range inventories {
		inv := &inventories[i]
		if inv.ProductID == nil || inv.Product == nil {
			continue
		}
		stock[*inv.ProductID] += inv.TotalUnits()
		byID[*inv.ProductID] = inv.Product
	}

	products := make([]entity.Product, 0)
	for id, total := range stock {
		if total < threshold {
			products = append(products, *byID[id])
		}
	}
	return products
}

// Summary reports distinct referenced products, total units across all
// entries, and the low-stock product count at the default threshold.
func (s *InventoryService) Summary(ctx context.Context) (*entity.InventorySummary, error) {
	inventories, err := s.inventoryRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	totalUnits := 0
	for i := range inventories {
		inv := &inventories[i]
		totalUnits += inv.TotalUnits()
		if inv.ProductID != nil {
			seen[*inv.ProductID] = struct{}{}
		}
	}

	return &entity.InventorySummary{
		TotalProducts: len(seen),
		TotalUnits:    totalUnits,
		LowStockCount: len(lowStockProducts(inventories, DefaultLowStockThreshold)),
	}, nil
}
