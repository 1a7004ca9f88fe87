package models

import (
	"fmt"
	"time"

	"lunchly_backend/pkg/utils"
)

// ReservationFields carries the raw input for constructing a Reservation.
// CustomerID is required; ID and Notes are optional.
type ReservationFields struct {
	ID         *int64
	CustomerID int64
	NumGuests  int
	StartAt    time.Time
	Notes      *string
}

// Reservation represents a table reservation placed by a customer.
// Fields live behind validating accessors so the invariants hold for
// the lifetime of the instance, including partial updates.
type Reservation struct {
	id         Identity
	customerID int64
	numGuests  int
	startAt    time.Time
	notes      string
}

// NewReservation builds a Reservation from a field set. A reservation
// always requires an owning customer; omission fails construction.
func NewReservation(fields ReservationFields) (*Reservation, error) {
	r := &Reservation{}
	if fields.ID != nil {
		id, err := SavedIdentity(*fields.ID)
		if err != nil {
			return nil, err
		}
		r.id = id
	}
	if err := r.SetCustomerID(fields.CustomerID); err != nil {
		return nil, err
	}
	if err := r.SetNumGuests(fields.NumGuests); err != nil {
		return nil, err
	}
	if err := r.SetStartAt(fields.StartAt); err != nil {
		return nil, err
	}
	var notes string
	if fields.Notes != nil {
		notes = *fields.Notes
	}
	r.SetNotes(notes)
	return r, nil
}

// ID returns the reservation's store identity.
func (r *Reservation) ID() Identity {
	return r.id
}

// AssignID records the id generated by the store on insert.
func (r *Reservation) AssignID(id int64) error {
	if r.id.Assigned() && r.id.Value() != id {
		return fmt.Errorf("%w: cannot change the id of a saved reservation", ErrValidation)
	}
	saved, err := SavedIdentity(id)
	if err != nil {
		return err
	}
	r.id = saved
	return nil
}

// SetCustomerID sets the owning customer. The field is write-once: a
// reservation cannot be transferred to another customer, so changing an
// already set id fails, while re-setting the same id is a no-op.
func (r *Reservation) SetCustomerID(customerID int64) error {
	if r.customerID != 0 && r.customerID != customerID {
		return fmt.Errorf("%w: cannot change customer ID", ErrValidation)
	}
	if customerID <= 0 {
		return fmt.Errorf("%w: a reservation requires an owning customer", ErrValidation)
	}
	r.customerID = customerID
	return nil
}

func (r *Reservation) CustomerID() int64 {
	return r.customerID
}

// SetNumGuests sets the guest count, which must be strictly positive.
func (r *Reservation) SetNumGuests(numGuests int) error {
	if numGuests <= 0 {
		return fmt.Errorf("%w: must have at least one guest", ErrValidation)
	}
	r.numGuests = numGuests
	return nil
}

func (r *Reservation) NumGuests() int {
	return r.numGuests
}

// SetStartAt sets the start time, which must be a valid instant.
func (r *Reservation) SetStartAt(startAt time.Time) error {
	if startAt.IsZero() {
		return fmt.Errorf("%w: not a valid start time", ErrValidation)
	}
	r.startAt = startAt
	return nil
}

func (r *Reservation) StartAt() time.Time {
	return r.startAt
}

// SetNotes sets the reservation's notes. Absent input normalizes to the
// empty string, never null.
func (r *Reservation) SetNotes(notes string) {
	r.notes = notes
}

func (r *Reservation) Notes() string {
	return r.notes
}

// FormattedStartAt derives a human-readable rendering of the start
// time, e.g. "April 1st 2021, 7:30 pm". Recomputed on every access.
func (r *Reservation) FormattedStartAt() string {
	return utils.FormatLongDateTime(r.startAt)
}
