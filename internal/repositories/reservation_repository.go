package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"lunchly_backend/internal/models"
)

// ReservationRepository defines the interface for reservation-related
// database operations.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Reservation, error)
	ForCustomer(ctx context.Context, customerID int64) ([]*models.Reservation, error)
	Save(ctx context.Context, executor SQLExecutor, reservation *models.Reservation) error
}

type reservationRepository struct {
	db *sql.DB
}

// NewReservationRepository creates a new instance of ReservationRepository.
func NewReservationRepository(db *sql.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

const reservationColumns = `id, customer_id, num_guests, start_at, notes`

// scanReservationRow maps one row to a Reservation through the entity
// constructor, re-validating every field on load.
func scanReservationRow(row scanner) (*models.Reservation, error) {
	var id, customerID int64
	var numGuests int
	var startAt time.Time
	var notes sql.NullString

	if err := row.Scan(&id, &customerID, &numGuests, &startAt, &notes); err != nil {
		return nil, err
	}

	fields := models.ReservationFields{
		ID:         &id,
		CustomerID: customerID,
		NumGuests:  numGuests,
		StartAt:    startAt,
	}
	if notes.Valid {
		fields.Notes = &notes.String
	}

	reservation, err := models.NewReservation(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: stored reservation %d failed validation: %v", ErrDatabaseError, id, err)
	}
	return reservation, nil
}

// GetByID retrieves a single reservation by id.
func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
	          FROM reservations WHERE id = $1`
	reservation, err := scanReservationRow(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if errors.Is(err, ErrDatabaseError) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: getting reservation by ID %d: %v", ErrDatabaseError, id, err)
	}
	return reservation, nil
}

// ForCustomer returns all reservations owned by the given customer in
// store order.
func (r *reservationRepository) ForCustomer(ctx context.Context, customerID int64) ([]*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
	          FROM reservations WHERE customer_id = $1`
	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying reservations for customer %d: %v", ErrDatabaseError, customerID, err)
	}
	defer rows.Close()

	reservations := []*models.Reservation{}
	for rows.Next() {
		reservation, err := scanReservationRow(rows)
		if err != nil {
			if errors.Is(err, ErrDatabaseError) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: scanning reservation: %v", ErrDatabaseError, err)
		}
		reservations = append(reservations, reservation)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating reservation rows: %v", ErrDatabaseError, err)
	}
	return reservations, nil
}

// Save persists the reservation: an unsaved entity is inserted and the
// generated id assigned onto it in place, a saved one is updated by id.
// The owning customer is set on insert and never touched on update.
func (r *reservationRepository) Save(ctx context.Context, executor SQLExecutor, reservation *models.Reservation) error {
	if !reservation.ID().Assigned() {
		query := `INSERT INTO reservations (customer_id, num_guests, start_at, notes)
		          VALUES ($1, $2, $3, $4)
		          RETURNING id`
		var id int64
		err := executor.QueryRowContext(ctx, query,
			reservation.CustomerID(), reservation.NumGuests(), reservation.StartAt(), reservation.Notes(),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("%w: inserting reservation: %v", ErrDatabaseError, err)
		}
		return reservation.AssignID(id)
	}

	query := `UPDATE reservations SET num_guests = $1, start_at = $2, notes = $3
	          WHERE id = $4`
	result, err := executor.ExecContext(ctx, query,
		reservation.NumGuests(), reservation.StartAt(), reservation.Notes(),
		reservation.ID().Value(),
	)
	if err != nil {
		return fmt.Errorf("%w: updating reservation ID %d: %v", ErrDatabaseError, reservation.ID().Value(), err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for reservation ID %d: %v", ErrDatabaseError, reservation.ID().Value(), err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
