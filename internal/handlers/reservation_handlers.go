package handlers

import (
	"errors"
	"net/http"

	"lunchly_backend/internal/services"
	"lunchly_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler holds the reservation service.
type ReservationHandler struct {
	reservationService services.ReservationService
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(rs services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: rs}
}

// CreateReservation handles placing a new reservation for a customer.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	idStr := c.Param("id")
	customerID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid customer ID format.", err.Error()))
		return
	}

	var req services.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateReservation: Failed to bind JSON for customer "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	reservation, err := h.reservationService.CreateReservation(c.Request.Context(), customerID, req)
	if err != nil {
		utils.LogError(err, "CreateReservation: Error from reservationService.CreateReservation for customer "+idStr)
		if errors.Is(err, services.ErrCustomerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Customer not found.", err.Error()))
		} else if errors.Is(err, services.ErrReservationValidation) || errors.Is(err, services.ErrStartAtFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create reservation.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, reservation)
}

// GetReservationByID handles fetching a single reservation by ID.
func (h *ReservationHandler) GetReservationByID(c *gin.Context) {
	idStr := c.Param("id")
	reservationID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid reservation ID format.", err.Error()))
		return
	}

	reservation, err := h.reservationService.GetReservationByID(c.Request.Context(), reservationID)
	if err != nil {
		utils.LogError(err, "GetReservationByID: Error from reservationService.GetReservationByID for ID "+idStr)
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Reservation not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch reservation.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// UpdateReservation handles updating a reservation. The owning customer
// cannot be changed; attempting to do so fails validation.
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	idStr := c.Param("id")
	reservationID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid reservation ID format.", err.Error()))
		return
	}

	var req services.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateReservation: Failed to bind JSON for ID "+idStr)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	reservation, err := h.reservationService.UpdateReservation(c.Request.Context(), reservationID, req)
	if err != nil {
		utils.LogError(err, "UpdateReservation: Error from reservationService.UpdateReservation for ID "+idStr)
		if errors.Is(err, services.ErrReservationNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Reservation not found to update.", err.Error()))
		} else if errors.Is(err, services.ErrReservationValidation) || errors.Is(err, services.ErrStartAtFormat) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update reservation.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, reservation)
}
