package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/application/service"
	"github.com/wairimud/dukabook-api/internal/presentation/http/dto/response"
	"github.com/wairimud/dukabook-api/pkg/pagination"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	inventoryService *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// List handles listing stock entries
func (h *InventoryHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.inventoryService.ListInventories(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Inventory entries retrieved successfully", result)
}

// Create handles adding a stock entry
func (h *InventoryHandler) Create(c *gin.Context) {
	var req struct {
		ProductID       uuid.UUID `json:"product_id" binding:"required"`
		UnitsPerCarton  int       `json:"units_per_carton"`
		NumberOfCartons int       `json:"number_of_cartons"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inventory, err := h.inventoryService.AddInventory(c.Request.Context(), &service.AddInventoryInput{
		ProductID:       req.ProductID,
		UnitsPerCarton:  req.UnitsPerCarton,
		NumberOfCartons: req.NumberOfCartons,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Inventory entry created successfully", inventory)
}

// Get handles getting a single stock entry
func (h *InventoryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory ID")
		return
	}

	inventory, err := h.inventoryService.GetInventory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory entry retrieved successfully", inventory)
}

// Update handles updating a stock entry
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory ID")
		return
	}

	var req struct {
		UnitsPerCarton  *int `json:"units_per_carton"`
		NumberOfCartons *int `json:"number_of_cartons"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inventory, err := h.inventoryService.UpdateInventory(c.Request.Context(), &service.UpdateInventoryInput{
		ID:              id,
		UnitsPerCarton:  req.UnitsPerCarton,
		NumberOfCartons: req.NumberOfCartons,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory entry updated successfully", inventory)
}

// Delete handles deleting a stock entry
func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid inventory ID")
		return
	}

	if err := h.inventoryService.DeleteInventory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// TotalStock handles getting a product's total units across its entries
func (h *InventoryHandler) TotalStock(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	total, err := h.inventoryService.TotalStock(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Total stock retrieved successfully", gin.H{
		"product_id":  productID,
		"total_units": total,
	})
}

// LowStock handles listing products below the stock threshold
func (h *InventoryHandler) LowStock(c *gin.Context) {
	threshold := service.DefaultLowStockThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(c, "Invalid threshold")
			return
		}
		threshold = parsed
	}

	products, err := h.inventoryService.LowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}

// Summary handles the inventory dashboard summary
func (h *InventoryHandler) Summary(c *gin.Context) {
	summary, err := h.inventoryService.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Inventory summary retrieved successfully", summary)
}
