package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/wairimud/dukabook-api/internal/domain/entity"
	"github.com/wairimud/dukabook-api/internal/domain/repository"
	"github.com/wairimud/dukabook-api/pkg/apperror"
	"github.com/wairimud/dukabook-api/pkg/pagination"
)

// CustomerService handles customer directory operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name          string
	ContactNumber string
	Email         string
	TRNNumber     string
	Branch        string
	Address       string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewBadRequestError("Customer name is required")
	}

	customer := &entity.Customer{
		Name:          input.Name,
		ContactNumber: input.ContactNumber,
		Email:         input.Email,
		TRNNumber:     input.TRNNumber,
		Branch:        input.Branch,
		Address:       input.Address,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with optional name/email search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID            uuid.UUID
	Name          *string
	ContactNumber *string
	Email         *string
	TRNNumber     *string
	Branch        *string
	Address       *string
}

// UpdateCustomer updates a customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewBadRequestError("Customer name is required")
		}
		customer.Name = *input.Name
	}
	if input.ContactNumber != nil {
		customer.ContactNumber = *input.ContactNumber
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.TRNNumber != nil {
		customer.TRNNumber = *input.TRNNumber
	}
	if input.Branch != nil {
		customer.Branch = *input.Branch
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}

	return s.customerRepo.Delete(ctx, id)
}
