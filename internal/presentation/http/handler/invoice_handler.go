package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/application/service"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	"github.com/wairimud/dukabook-api/internal/domain/repository"
	"github.com/wairimud/dukabook-api/internal/presentation/http/dto/request"
	"github.com/wairimud/dukabook-api/internal/presentation/http/dto/response"
	"github.com/wairimud/dukabook-api/pkg/pagination"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles listing invoices with optional status and customer filters
func (h *InvoiceHandler) List(c *gin.Context) {
	var pageParams pagination.PaginationParams
	if err := c.ShouldBindQuery(&pageParams); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	pageParams.Validate()

	params := &repository.InvoiceFilterParams{Pagination: &pageParams}

	if raw := c.Query("status"); raw != "" {
		status := entity.InvoiceStatus(raw)
		switch status {
		case entity.InvoiceStatusDraft, entity.InvoiceStatusOverdue, entity.InvoiceStatusPaid:
			params.Status = &status
		default:
			response.BadRequest(c, "Invalid status filter")
			return
		}
	}

	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID filter")
			return
		}
		params.CustomerID = &customerID
	}

	result, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Create handles creating an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	items := make([]service.LineItemInput, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		items = append(items, service.LineItemInput{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Barcode:       item.Barcode,
			Quantity:      item.Quantity,
			Price:         item.Price,
			VATPercentage: item.VATPercentage,
		})
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		CustomerID:    req.CustomerID,
		InvoiceDate:   req.InvoiceDate,
		DeliveredDate: req.DeliveredDate,
		LineItems:     items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// Get handles getting a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// Update handles updating an invoice's customer and dates
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateInvoice(c.Request.Context(), &service.UpdateInvoiceInput{
		ID:                 id,
		CustomerID:         req.CustomerID,
		ClearCustomer:      req.ClearCustomer,
		InvoiceDate:        req.InvoiceDate,
		DeliveredDate:      req.DeliveredDate,
		ClearDeliveredDate: req.ClearDeliveredDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice updated successfully", invoice)
}

// Delete handles deleting an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// NextNumber handles previewing the next invoice number
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	number, err := h.invoiceService.NextInvoiceNumber(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Next invoice number retrieved successfully", gin.H{
		"invoice_number": number,
	})
}

// UpdateLineItem handles updating a line item on an invoice
func (h *InvoiceHandler) UpdateLineItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid line item ID")
		return
	}

	var req request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.invoiceService.UpdateLineItem(c.Request.Context(), &service.UpdateLineItemInput{
		ID:            id,
		Name:          req.Name,
		Barcode:       req.Barcode,
		Quantity:      req.Quantity,
		Price:         req.Price,
		VATPercentage: req.VATPercentage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item updated successfully", item)
}
