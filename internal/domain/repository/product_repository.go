package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	"github.com/wairimud/dukabook-api/pkg/pagination"
)

// ProductRepository defines the interface for catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// Delete removes the product and clears the product reference on any
	// inventory entry pointing at it, in one transaction.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Product, int64, error)
}

// InventoryRepository defines the interface for stock entry operations
type InventoryRepository interface {
	Create(ctx context.Context, inventory *entity.Inventory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error)
	Update(ctx context.Context, inventory *entity.Inventory) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Inventory, int64, error)
	// ListAll returns every entry with its product preloaded, for the
	// stock aggregations.
	ListAll(ctx context.Context) ([]entity.Inventory, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.Inventory, error)
}
