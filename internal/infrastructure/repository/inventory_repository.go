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

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, inventory *entity.Inventory) error {
	return r.db.WithContext(ctx).Create(inventory).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Inventory, error) {
	var inventory entity.Inventory
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&inventory, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &inventory, err
}

func (r *inventoryRepository) Update(ctx context.Context, inventory *entity.Inventory) error {
	return r.db.WithContext(ctx).Save(inventory).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Inventory{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Inventory, int64, error) {
	var inventories []entity.Inventory
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Inventory{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Product").
		Order("created_at DESC").
		Find(&inventories).Error

	return inventories, total, err
}

func (r *inventoryRepository) ListAll(ctx context.Context) ([]entity.Inventory, error) {
	var inventories []entity.Inventory
	err := r.db.WithContext(ctx).
		Preload("Product").
		Find(&inventories).Error
	return inventories, err
}

func (r *inventoryRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]entity.Inventory, error) {
	var inventories []entity.Inventory
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&inventories).Error
	return inventories, err
}
