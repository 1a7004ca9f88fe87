package models_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunchly_backend/internal/models"
	"lunchly_backend/pkg/utils"
)

func Test_NewCustomer_Valid(t *testing.T) {
	customer, err := models.NewCustomer(models.CustomerFields{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     utils.NewNullString("555-1234"),
		Notes:     utils.NewNullString("regular"),
	})
	require.NoError(t, err)

	assert.False(t, customer.ID().Assigned())
	assert.Equal(t, "Ada", customer.FirstName())
	assert.Equal(t, "Lovelace", customer.LastName())
	require.NotNil(t, customer.Phone())
	assert.Equal(t, "555-1234", *customer.Phone())
	assert.Equal(t, "regular", customer.Notes())

	_, ok := customer.ResCount()
	assert.False(t, ok, "reservation count is only set by the best-customers query")
}

func Test_NewCustomer_RequiresNames(t *testing.T) {
	tests := []struct {
		name      string
		firstName string
		lastName  string
	}{
		{name: "empty_first_name", firstName: "", lastName: "Lovelace"},
		{name: "blank_first_name", firstName: "   ", lastName: "Lovelace"},
		{name: "empty_last_name", firstName: "Ada", lastName: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			customer, err := models.NewCustomer(models.CustomerFields{
				FirstName: tc.firstName,
				LastName:  tc.lastName,
			})
			assert.Nil(t, customer)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func Test_Customer_FullName(t *testing.T) {
	customer, err := models.NewCustomer(models.CustomerFields{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", customer.FullName())

	require.NoError(t, customer.SetLastName("Byron"))
	assert.Equal(t, "Ada Byron", customer.FullName(), "full name is recomputed on every access")
}

func Test_Customer_PhoneNormalizesEmptyToNil(t *testing.T) {
	customer, err := models.NewCustomer(models.CustomerFields{FirstName: "Grace", LastName: "Hopper"})
	require.NoError(t, err)
	assert.Nil(t, customer.Phone())

	customer.SetPhone("555-0000")
	require.NotNil(t, customer.Phone())

	customer.SetPhone("")
	assert.Nil(t, customer.Phone(), "empty phone is stored as null, never empty string")
}

func Test_Customer_NotesNormalizeToEmptyString(t *testing.T) {
	customer, err := models.NewCustomer(models.CustomerFields{FirstName: "Grace", LastName: "Hopper"})
	require.NoError(t, err)
	assert.Equal(t, "", customer.Notes())
}

func Test_Customer_AssignID_IsWriteOnce(t *testing.T) {
	customer, err := models.NewCustomer(models.CustomerFields{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	require.NoError(t, customer.AssignID(3))
	assert.Equal(t, int64(3), customer.ID().Value())

	assert.ErrorIs(t, customer.AssignID(4), models.ErrValidation)
	assert.NoError(t, customer.AssignID(3))
	assert.Equal(t, int64(3), customer.ID().Value())
}

func Test_Customer_ResCount_PopulatedFromFields(t *testing.T) {
	count := 5
	id := int64(1)
	customer, err := models.NewCustomer(models.CustomerFields{
		ID:        &id,
		FirstName: "Ada",
		LastName:  "Lovelace",
		ResCount:  &count,
	})
	require.NoError(t, err)

	got, ok := customer.ResCount()
	assert.True(t, ok)
	assert.Equal(t, 5, got)
}

type stubReservationSource struct {
	reservations []*models.Reservation
	err          error
	requestedID  int64
}

func (s *stubReservationSource) ForCustomer(_ context.Context, customerID int64) ([]*models.Reservation, error) {
	s.requestedID = customerID
	return s.reservations, s.err
}

func Test_Customer_Reservations(t *testing.T) {
	id := int64(9)
	customer, err := models.NewCustomer(models.CustomerFields{ID: &id, FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	reservation, err := models.NewReservation(models.ReservationFields{
		CustomerID: 9,
		NumGuests:  2,
		StartAt:    time.Date(2021, time.April, 1, 19, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	source := &stubReservationSource{reservations: []*models.Reservation{reservation}}
	got, err := customer.Reservations(context.Background(), source)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, int64(9), source.requestedID)
}

func Test_Customer_Reservations_UnsavedCustomerHasNone(t *testing.T) {
	customer, err := models.NewCustomer(models.CustomerFields{FirstName: "Ada", LastName: "Lovelace"})
	require.NoError(t, err)

	source := &stubReservationSource{}
	got, err := customer.Reservations(context.Background(), source)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, source.requestedID, "the source must not be queried for an unsaved customer")
}
