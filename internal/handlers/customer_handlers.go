package handlers

import (
	"errors"
	"net/http"

	"lunchly_backend/internal/services"
	"lunchly_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CustomerHandler holds the customer service.
type CustomerHandler struct {
	customerService services.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(cs services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: cs}
}

// CreateCustomer handles the creation of a new customer.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req services.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCustomer: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateCustomer: Error from customerService.CreateCustomer")
		if errors.Is(err, services.ErrCustomerValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create customer.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GetCustomers handles fetching all customers, optionally filtered by a
// case-insensitive substring search on first or last name.
func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	searchTerm := c.Query("search")
	var pSearchTerm *string
	if searchTerm != "" {
		pSearchTerm = &searchTerm
	}

	customers, err := h.customerService.GetCustomers(c.Request.Context(), pSearchTerm)
	if err != nil {
		utils.LogError(err, "GetCustomers: Error from customerService.GetCustomers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch customers.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customers})
}

// GetBestCustomers handles fetching the 10 customers with the most
// reservations.
func (h *CustomerHandler) GetBestCustomers(c *gin.Context) {
	customers, err := h.customerService.GetBestCustomers(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetBestCustomers: Error from customerService.GetBestCustomers")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch best customers.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": customers})
}

// GetCustomerByID handles fetching a single customer and their
// reservations.
func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	idStr := c.Param("id")
	customerID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		utils.LogError(err, "GetCustomerByID: Error from customerService.GetCustomerByID for ID "+idStr)
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch customer.", "Internal error"))
		}
		return
	}

	reservations, err := h.customerService.GetCustomerReservations(c.Request.Context(), customerID)
	if err != nil {
		utils.LogError(err, "GetCustomerByID: Error from customerService.GetCustomerReservations for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch customer reservations.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer":     customer,
		"reservations": reservations,
	})
}

// UpdateCustomer handles updating a customer.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	idStr := c.Param("id")
	customerID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	var req services.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateCustomer: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), customerID, req)
	if err != nil {
		utils.LogError(err, "UpdateCustomer: Error from customerService.UpdateCustomer for ID "+idStr)
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrCustomerValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update customer.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, customer)
}
