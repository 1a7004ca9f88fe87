package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"lunchly_backend/internal/models"
	"lunchly_backend/internal/repositories"
)

// --- Custom Service Errors for Customer ---
var (
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCustomerValidation = errors.New("customer data validation error")
)

// --- Customer DTOs ---
type CreateCustomerRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
}

type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Notes     *string `json:"notes"`
}

// CustomerResponse is the boundary view of a customer. FullName is the
// derived display name; ReservationCount is only present on results of
// the best-customers query.
type CustomerResponse struct {
	ID               int64   `json:"id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	FullName         string  `json:"full_name"`
	Phone            *string `json:"phone,omitempty"`
	Notes            string  `json:"notes"`
	ReservationCount *int    `json:"reservation_count,omitempty"`
}

func newCustomerResponse(customer *models.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:        customer.ID().Value(),
		FirstName: customer.FirstName(),
		LastName:  customer.LastName(),
		FullName:  customer.FullName(),
		Phone:     customer.Phone(),
		Notes:     customer.Notes(),
	}
	if count, ok := customer.ResCount(); ok {
		resp.ReservationCount = &count
	}
	return resp
}

// --- CustomerService Interface ---
type CustomerService interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error)
	GetCustomerByID(ctx context.Context, customerID int64) (*CustomerResponse, error)
	GetCustomers(ctx context.Context, searchTerm *string) ([]CustomerResponse, error)
	GetBestCustomers(ctx context.Context) ([]CustomerResponse, error)
	UpdateCustomer(ctx context.Context, customerID int64, req UpdateCustomerRequest) (*CustomerResponse, error)
	GetCustomerReservations(ctx context.Context, customerID int64) ([]ReservationResponse, error)
}

// --- customerService Implementation ---
type customerService struct {
	customerRepo    repositories.CustomerRepository
	reservationRepo repositories.ReservationRepository
	db              *sql.DB
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(customerRepo repositories.CustomerRepository, reservationRepo repositories.ReservationRepository, db *sql.DB) CustomerService {
	return &customerService{
		customerRepo:    customerRepo,
		reservationRepo: reservationRepo,
		db:              db,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := models.NewCustomer(models.CustomerFields{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCustomerValidation, err)
	}

	if err := s.customerRepo.Save(ctx, s.db, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer in repository: %w", err)
	}
	resp := newCustomerResponse(customer)
	return &resp, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}
	resp := newCustomerResponse(customer)
	return &resp, nil
}

// GetCustomers returns every customer, or only those matching the
// search term case-insensitively on first or last name. The term is
// wildcard-wrapped here, before it reaches the repository.
func (s *customerService) GetCustomers(ctx context.Context, searchTerm *string) ([]CustomerResponse, error) {
	var customers []*models.Customer
	var err error
	if searchTerm != nil && strings.TrimSpace(*searchTerm) != "" {
		pattern := "%" + strings.TrimSpace(*searchTerm) + "%"
		customers, err = s.customerRepo.Search(ctx, pattern)
	} else {
		customers, err = s.customerRepo.All(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, newCustomerResponse(customer))
	}
	return responses, nil
}

func (s *customerService) GetBestCustomers(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.Best(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get best customers: %w", err)
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		responses = append(responses, newCustomerResponse(customer))
	}
	return responses, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID int64, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer for update: %w", err)
	}

	if req.FirstName != nil {
		if err := customer.SetFirstName(*req.FirstName); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCustomerValidation, err)
		}
	}
	if req.LastName != nil {
		if err := customer.SetLastName(*req.LastName); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCustomerValidation, err)
		}
	}
	if req.Phone != nil {
		customer.SetPhone(*req.Phone)
	}
	if req.Notes != nil {
		customer.SetNotes(*req.Notes)
	}

	if err := s.customerRepo.Save(ctx, s.db, customer); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to update customer in repository: %w", err)
	}
	resp := newCustomerResponse(customer)
	return &resp, nil
}

func (s *customerService) GetCustomerReservations(ctx context.Context, customerID int64) ([]ReservationResponse, error) {
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	reservations, err := customer.Reservations(ctx, s.reservationRepo)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations for customer %d: %w", customerID, err)
	}

	responses := make([]ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		responses = append(responses, newReservationResponse(reservation))
	}
	return responses, nil
}
