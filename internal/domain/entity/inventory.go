package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inventory represents one stock entry for a product. A product may have
// several entries; its total stock is the sum over all of them.
type Inventory struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ProductID       *uuid.UUID     `gorm:"type:uuid;index" json:"product_id,omitempty"`
	UnitsPerCarton  int            `gorm:"default:0" json:"units_per_carton"`
	NumberOfCartons int            `gorm:"default:0" json:"number_of_cartons"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new inventory entry
func (i *Inventory) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Inventory model
func (Inventory) TableName() string {
	return "inventories"
}

// TotalUnits returns the unit count of this entry. Computed, never stored.
func (i *Inventory) TotalUnits() int {
	return i.UnitsPerCarton * i.NumberOfCartons
}

// MarshalJSON includes the computed total_units in API responses
func (i Inventory) MarshalJSON() ([]byte, error) {
	type Alias Inventory
	return json.Marshal(&struct {
		Alias
		TotalUnits int `json:"total_units"`
	}{
		Alias:      Alias(i),
		TotalUnits: i.TotalUnits(),
	})
}

// InventorySummary aggregates the whole inventory ledger.
type InventorySummary struct {
	TotalProducts int `json:"total_products"`
	TotalUnits    int `json:"total_units"`
	LowStockCount int `json:"low_stock_count"`
}
