package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/application/service"
	"github.com/wairimud/dukabook-api/internal/presentation/http/dto/response"
	"github.com/wairimud/dukabook-api/pkg/pagination"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
	receiptService  *service.ReceiptService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService, receiptService *service.ReceiptService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		receiptService:  receiptService,
	}
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	var params pagination.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	params.Validate()
	search := c.Query("search")

	result, err := h.customerService.ListCustomers(c.Request.Context(), &params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		ContactNumber string `json:"contact_number"`
		Email         string `json:"email"`
		TRNNumber     string `json:"trn_number"`
		Branch        string `json:"branch"`
		Address       string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		TRNNumber:     req.TRNNumber,
		Branch:        req.Branch,
		Address:       req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req struct {
		Name          *string `json:"name"`
		ContactNumber *string `json:"contact_number"`
		Email         *string `json:"email"`
		TRNNumber     *string `json:"trn_number"`
		Branch        *string `json:"branch"`
		Address       *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), &service.UpdateCustomerInput{
		ID:            id,
		Name:          req.Name,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		TRNNumber:     req.TRNNumber,
		Branch:        req.Branch,
		Address:       req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Outstanding handles getting a customer's unpaid invoice total
func (h *CustomerHandler) Outstanding(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	amount, err := h.receiptService.OutstandingAmount(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Outstanding amount retrieved successfully", gin.H{
		"customer_id":        id,
		"outstanding_amount": amount,
	})
}
