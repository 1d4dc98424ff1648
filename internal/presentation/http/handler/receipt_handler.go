package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/application/service"
	"github.com/wairimud/dukabook-api/internal/presentation/http/dto/request"
	"github.com/wairimud/dukabook-api/internal/presentation/http/dto/response"
	"github.com/wairimud/dukabook-api/pkg/pagination"
)

// ReceiptHandler handles payment receipt HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// List handles listing payment receipts
func (h *ReceiptHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()

	result, err := h.receiptService.ListReceipts(c.Request.Context(), &params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Payment receipts retrieved successfully", result)
}

// Generate handles settling a customer's invoices under a new receipt
func (h *ReceiptHandler) Generate(c *gin.Context) {
	var req request.GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receipt, err := h.receiptService.GenerateReceipt(c.Request.Context(), &service.GenerateReceiptInput{
		CustomerID:  req.CustomerID,
		InvoiceIDs:  req.InvoiceIDs,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment receipt generated successfully", receipt)
}

// Get handles getting a single receipt with its settled invoices
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment receipt retrieved successfully", receipt)
}
