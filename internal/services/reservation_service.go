package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"lunchly_backend/internal/models"
	"lunchly_backend/internal/repositories"
)

// --- Custom Service Errors for Reservation ---
var (
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrReservationValidation = errors.New("reservation data validation error")
	ErrStartAtFormat         = errors.New("invalid start_at format, please use RFC 3339 or YYYY-MM-DD HH:MM")
)

// startAtLayouts are accepted on input; responses always render RFC 3339
// plus the derived human-readable form.
var startAtLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02T15:04"}

// --- Reservation DTOs ---
type CreateReservationRequest struct {
	NumGuests int     `json:"num_guests" binding:"required"`
	StartAt   string  `json:"start_at" binding:"required"`
	Notes     *string `json:"notes"`
}

type UpdateReservationRequest struct {
	CustomerID *int64  `json:"customer_id"`
	NumGuests  *int    `json:"num_guests"`
	StartAt    *string `json:"start_at"`
	Notes      *string `json:"notes"`
}

// ReservationResponse is the boundary view of a reservation.
// FormattedStartAt is the derived display rendering of StartAt.
type ReservationResponse struct {
	ID               int64     `json:"id"`
	CustomerID       int64     `json:"customer_id"`
	NumGuests        int       `json:"num_guests"`
	StartAt          time.Time `json:"start_at"`
	FormattedStartAt string    `json:"formatted_start_at"`
	Notes            string    `json:"notes"`
}

func newReservationResponse(reservation *models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:               reservation.ID().Value(),
		CustomerID:       reservation.CustomerID(),
		NumGuests:        reservation.NumGuests(),
		StartAt:          reservation.StartAt(),
		FormattedStartAt: reservation.FormattedStartAt(),
		Notes:            reservation.Notes(),
	}
}

// --- ReservationService Interface ---
type ReservationService interface {
	CreateReservation(ctx context.Context, customerID int64, req CreateReservationRequest) (*ReservationResponse, error)
	GetReservationByID(ctx context.Context, reservationID int64) (*ReservationResponse, error)
	UpdateReservation(ctx context.Context, reservationID int64, req UpdateReservationRequest) (*ReservationResponse, error)
}

// --- reservationService Implementation ---
type reservationService struct {
	reservationRepo repositories.ReservationRepository
	customerRepo    repositories.CustomerRepository
	db              *sql.DB
}

// NewReservationService creates a new instance of ReservationService.
func NewReservationService(reservationRepo repositories.ReservationRepository, customerRepo repositories.CustomerRepository, db *sql.DB) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		db:              db,
	}
}

func parseStartAt(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range startAtLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrStartAtFormat
}

func (s *reservationService) CreateReservation(ctx context.Context, customerID int64, req CreateReservationRequest) (*ReservationResponse, error) {
	// The owning customer must exist before a reservation is placed.
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to check customer %d: %w", customerID, err)
	}

	startAt, err := parseStartAt(req.StartAt)
	if err != nil {
		return nil, err
	}

	reservation, err := models.NewReservation(models.ReservationFields{
		CustomerID: customerID,
		NumGuests:  req.NumGuests,
		StartAt:    startAt,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReservationValidation, err)
	}

	if err := s.reservationRepo.Save(ctx, s.db, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation in repository: %w", err)
	}
	resp := newReservationResponse(reservation)
	return &resp, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID int64) (*ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to get reservation by ID: %w", err)
	}
	resp := newReservationResponse(reservation)
	return &resp, nil
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservationID int64, req UpdateReservationRequest) (*ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to find reservation for update: %w", err)
	}

	// Re-setting the same customer is a no-op; a different customer is
	// rejected by the entity's write-once rule.
	if req.CustomerID != nil {
		if err := reservation.SetCustomerID(*req.CustomerID); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReservationValidation, err)
		}
	}
	if req.NumGuests != nil {
		if err := reservation.SetNumGuests(*req.NumGuests); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReservationValidation, err)
		}
	}
	if req.StartAt != nil {
		startAt, parseErr := parseStartAt(*req.StartAt)
		if parseErr != nil {
			return nil, parseErr
		}
		if err := reservation.SetStartAt(startAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReservationValidation, err)
		}
	}
	if req.Notes != nil {
		reservation.SetNotes(*req.Notes)
	}

	if err := s.reservationRepo.Save(ctx, s.db, reservation); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to update reservation in repository: %w", err)
	}
	resp := newReservationResponse(reservation)
	return &resp, nil
}
