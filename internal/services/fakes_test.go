package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lunchly_backend/internal/models"
	"lunchly_backend/internal/repositories"
)

// fakeCustomerRepo is an in-memory CustomerRepository for service tests.
type fakeCustomerRepo struct {
	customers     map[int64]*models.Customer
	allResult     []*models.Customer
	searchResult  []*models.Customer
	bestResult    []*models.Customer
	searchPattern string
	saveErr       error
	nextID        int64
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]*models.Customer{}}
}

func (f *fakeCustomerRepo) All(_ context.Context) ([]*models.Customer, error) {
	return f.allResult, nil
}

func (f *fakeCustomerRepo) Search(_ context.Context, pattern string) ([]*models.Customer, error) {
	f.searchPattern = pattern
	return f.searchResult, nil
}

func (f *fakeCustomerRepo) Best(_ context.Context) ([]*models.Customer, error) {
	return f.bestResult, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*models.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return customer, nil
}

func (f *fakeCustomerRepo) Save(_ context.Context, _ repositories.SQLExecutor, customer *models.Customer) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if !customer.ID().Assigned() {
		f.nextID++
		if err := customer.AssignID(f.nextID); err != nil {
			return err
		}
	} else if _, ok := f.customers[customer.ID().Value()]; !ok {
		return repositories.ErrNotFound
	}
	f.customers[customer.ID().Value()] = customer
	return nil
}

// fakeReservationRepo is an in-memory ReservationRepository for service tests.
type fakeReservationRepo struct {
	reservations map[int64]*models.Reservation
	byCustomer   map[int64][]*models.Reservation
	saveErr      error
	nextID       int64
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		reservations: map[int64]*models.Reservation{},
		byCustomer:   map[int64][]*models.Reservation{},
	}
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*models.Reservation, error) {
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return reservation, nil
}

func (f *fakeReservationRepo) ForCustomer(_ context.Context, customerID int64) ([]*models.Reservation, error) {
	return f.byCustomer[customerID], nil
}

func (f *fakeReservationRepo) Save(_ context.Context, _ repositories.SQLExecutor, reservation *models.Reservation) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if !reservation.ID().Assigned() {
		f.nextID++
		if err := reservation.AssignID(f.nextID); err != nil {
			return err
		}
	} else if _, ok := f.reservations[reservation.ID().Value()]; !ok {
		return repositories.ErrNotFound
	}
	f.reservations[reservation.ID().Value()] = reservation
	return nil
}

func mustCustomer(t *testing.T, id int64, firstName, lastName string) *models.Customer {
	t.Helper()
	fields := models.CustomerFields{FirstName: firstName, LastName: lastName}
	if id > 0 {
		fields.ID = &id
	}
	customer, err := models.NewCustomer(fields)
	require.NoError(t, err)
	return customer
}

func mustReservation(t *testing.T, id, customerID int64, numGuests int, startAt time.Time) *models.Reservation {
	t.Helper()
	fields := models.ReservationFields{CustomerID: customerID, NumGuests: numGuests, StartAt: startAt}
	if id > 0 {
		fields.ID = &id
	}
	reservation, err := models.NewReservation(fields)
	require.NoError(t, err)
	return reservation
}
