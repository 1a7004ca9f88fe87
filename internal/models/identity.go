package models

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a field setter receives a value that
// violates an entity invariant. It never involves the database.
var ErrValidation = errors.New("validation failed")

// Identity is the database identity of an entity. It is either unsaved
// (no row exists yet) or carries the positive id assigned by the store
// on insert. Modelling the two states explicitly keeps the
// insert-vs-update branch in Save exhaustive.
type Identity struct {
	value    int64
	assigned bool
}

// UnsavedIdentity returns the identity of an entity that has not been
// persisted yet.
func UnsavedIdentity() Identity {
	return Identity{}
}

// SavedIdentity returns the identity of a persisted entity.
func SavedIdentity(id int64) (Identity, error) {
	if id <= 0 {
		return Identity{}, fmt.Errorf("%w: id must be a positive integer, got %d", ErrValidation, id)
	}
	return Identity{value: id, assigned: true}, nil
}

// Assigned reports whether the store has assigned an id.
func (i Identity) Assigned() bool {
	return i.assigned
}

// Value returns the assigned id, or 0 for an unsaved identity.
func (i Identity) Value() int64 {
	return i.value
}
