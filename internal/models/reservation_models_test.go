package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunchly_backend/internal/models"
)

func validReservationFields() models.ReservationFields {
	return models.ReservationFields{
		CustomerID: 5,
		NumGuests:  2,
		StartAt:    time.Date(2021, time.April, 1, 19, 30, 0, 0, time.UTC),
	}
}

func Test_NewReservation_Valid(t *testing.T) {
	notes := "window seat"
	fields := validReservationFields()
	fields.Notes = &notes

	reservation, err := models.NewReservation(fields)
	require.NoError(t, err)

	assert.False(t, reservation.ID().Assigned())
	assert.Equal(t, int64(5), reservation.CustomerID())
	assert.Equal(t, 2, reservation.NumGuests())
	assert.Equal(t, fields.StartAt, reservation.StartAt())
	assert.Equal(t, "window seat", reservation.Notes())
}

func Test_NewReservation_InvalidFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(fields *models.ReservationFields)
	}{
		{
			name:   "missing_customer_id",
			mutate: func(f *models.ReservationFields) { f.CustomerID = 0 },
		},
		{
			name:   "negative_customer_id",
			mutate: func(f *models.ReservationFields) { f.CustomerID = -1 },
		},
		{
			name:   "zero_guests",
			mutate: func(f *models.ReservationFields) { f.NumGuests = 0 },
		},
		{
			name:   "negative_guests",
			mutate: func(f *models.ReservationFields) { f.NumGuests = -3 },
		},
		{
			name:   "zero_start_time",
			mutate: func(f *models.ReservationFields) { f.StartAt = time.Time{} },
		},
		{
			name: "non_positive_id",
			mutate: func(f *models.ReservationFields) {
				id := int64(0)
				f.ID = &id
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := validReservationFields()
			tc.mutate(&fields)

			reservation, err := models.NewReservation(fields)
			assert.Nil(t, reservation)
			assert.ErrorIs(t, err, models.ErrValidation)
		})
	}
}

func Test_Reservation_SetNumGuests(t *testing.T) {
	reservation, err := models.NewReservation(validReservationFields())
	require.NoError(t, err)

	for _, invalid := range []int{0, -1, -100} {
		err := reservation.SetNumGuests(invalid)
		assert.ErrorIs(t, err, models.ErrValidation)
		assert.Equal(t, 2, reservation.NumGuests(), "a failed set must not change the field")
	}

	for _, valid := range []int{1, 4, 250} {
		require.NoError(t, reservation.SetNumGuests(valid))
		assert.Equal(t, valid, reservation.NumGuests())
	}
}

func Test_Reservation_CustomerID_IsWriteOnce(t *testing.T) {
	reservation, err := models.NewReservation(validReservationFields())
	require.NoError(t, err)

	err = reservation.SetCustomerID(7)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, int64(5), reservation.CustomerID())

	// re-setting the same value is a no-op success
	assert.NoError(t, reservation.SetCustomerID(5))
	assert.Equal(t, int64(5), reservation.CustomerID())
}

func Test_Reservation_SetStartAt(t *testing.T) {
	reservation, err := models.NewReservation(validReservationFields())
	require.NoError(t, err)

	err = reservation.SetStartAt(time.Time{})
	assert.ErrorIs(t, err, models.ErrValidation)

	next := time.Date(2022, time.December, 24, 18, 0, 0, 0, time.UTC)
	require.NoError(t, reservation.SetStartAt(next))
	assert.Equal(t, next, reservation.StartAt())
}

func Test_Reservation_Notes_NormalizeToEmptyString(t *testing.T) {
	reservation, err := models.NewReservation(validReservationFields())
	require.NoError(t, err)

	assert.Equal(t, "", reservation.Notes())

	reservation.SetNotes("birthday dinner")
	assert.Equal(t, "birthday dinner", reservation.Notes())
}

func Test_Reservation_FormattedStartAt(t *testing.T) {
	tests := []struct {
		name     string
		startAt  time.Time
		expected string
	}{
		{
			name:     "evening",
			startAt:  time.Date(2021, time.April, 1, 19, 30, 0, 0, time.UTC),
			expected: "April 1st 2021, 7:30 pm",
		},
		{
			name:     "morning",
			startAt:  time.Date(2023, time.November, 22, 9, 5, 0, 0, time.UTC),
			expected: "November 22nd 2023, 9:05 am",
		},
		{
			name:     "noon",
			startAt:  time.Date(2024, time.June, 13, 12, 0, 0, 0, time.UTC),
			expected: "June 13th 2024, 12:00 pm",
		},
		{
			name:     "midnight",
			startAt:  time.Date(2024, time.January, 3, 0, 15, 0, 0, time.UTC),
			expected: "January 3rd 2024, 12:15 am",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := validReservationFields()
			fields.StartAt = tc.startAt

			reservation, err := models.NewReservation(fields)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, reservation.FormattedStartAt())
		})
	}
}

func Test_Reservation_AssignID(t *testing.T) {
	reservation, err := models.NewReservation(validReservationFields())
	require.NoError(t, err)

	require.NoError(t, reservation.AssignID(12))
	assert.True(t, reservation.ID().Assigned())
	assert.Equal(t, int64(12), reservation.ID().Value())

	assert.ErrorIs(t, reservation.AssignID(13), models.ErrValidation)
	assert.NoError(t, reservation.AssignID(12))
}
