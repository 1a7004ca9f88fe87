package models

import (
	"context"
	"fmt"
	"strings"
)

// CustomerFields carries the raw input for constructing a Customer.
// ID and ResCount are optional; the other fields pass through the
// validating setters so a bad field fails the construction.
type CustomerFields struct {
	ID        *int64
	FirstName string
	LastName  string
	Phone     *string
	Notes     *string
	ResCount  *int
}

// Customer represents a restaurant customer. All fields live behind
// validating accessors so every write path, not only construction,
// re-runs the field's validation.
type Customer struct {
	id        Identity
	firstName string
	lastName  string
	phone     *string
	notes     string
	resCount  *int
}

// ReservationSource lists the reservations owned by a customer.
// The reservation repository satisfies it.
type ReservationSource interface {
	ForCustomer(ctx context.Context, customerID int64) ([]*Reservation, error)
}

// NewCustomer builds a Customer from a field set, funnelling each field
// through its setter. The first validation failure aborts construction.
func NewCustomer(fields CustomerFields) (*Customer, error) {
	c := &Customer{}
	if fields.ID != nil {
		id, err := SavedIdentity(*fields.ID)
		if err != nil {
			return nil, err
		}
		c.id = id
	}
	if err := c.SetFirstName(fields.FirstName); err != nil {
		return nil, err
	}
	if err := c.SetLastName(fields.LastName); err != nil {
		return nil, err
	}
	var phone string
	if fields.Phone != nil {
		phone = *fields.Phone
	}
	c.SetPhone(phone)
	var notes string
	if fields.Notes != nil {
		notes = *fields.Notes
	}
	c.SetNotes(notes)
	if fields.ResCount != nil && *fields.ResCount > 0 {
		count := *fields.ResCount
		c.resCount = &count
	}
	return c, nil
}

// ID returns the customer's store identity.
func (c *Customer) ID() Identity {
	return c.id
}

// AssignID records the id generated by the store on insert. The id is
// write-once: assigning a different id to an already saved customer fails.
func (c *Customer) AssignID(id int64) error {
	if c.id.Assigned() && c.id.Value() != id {
		return fmt.Errorf("%w: cannot change the id of a saved customer", ErrValidation)
	}
	saved, err := SavedIdentity(id)
	if err != nil {
		return err
	}
	c.id = saved
	return nil
}

// SetFirstName sets the customer's first name, which must not be blank.
func (c *Customer) SetFirstName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: first name cannot be empty", ErrValidation)
	}
	c.firstName = name
	return nil
}

func (c *Customer) FirstName() string {
	return c.firstName
}

// SetLastName sets the customer's last name, which must not be blank.
func (c *Customer) SetLastName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: last name cannot be empty", ErrValidation)
	}
	c.lastName = name
	return nil
}

func (c *Customer) LastName() string {
	return c.lastName
}

// SetPhone sets the customer's phone number. An empty value normalizes
// to nil so it is stored as NULL rather than an empty string.
func (c *Customer) SetPhone(phone string) {
	if phone == "" {
		c.phone = nil
		return
	}
	c.phone = &phone
}

// Phone returns the phone number, or nil when the customer has none.
func (c *Customer) Phone() *string {
	return c.phone
}

// SetNotes sets the customer's notes. Absent input normalizes to the
// empty string, never null.
func (c *Customer) SetNotes(notes string) {
	c.notes = notes
}

func (c *Customer) Notes() string {
	return c.notes
}

// FullName derives the display name from the first and last names.
// It is recomputed on every access, never stored.
func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// ResCount returns the reservation count and true when the customer was
// loaded by the best-customers query, or 0 and false otherwise.
func (c *Customer) ResCount() (int, bool) {
	if c.resCount == nil {
		return 0, false
	}
	return *c.resCount, true
}

// Reservations returns the reservations owned by this customer in store
// order. An unsaved customer owns no reservations.
func (c *Customer) Reservations(ctx context.Context, source ReservationSource) ([]*Reservation, error) {
	if !c.id.Assigned() {
		return []*Reservation{}, nil
	}
	return source.ForCustomer(ctx, c.id.Value())
}
