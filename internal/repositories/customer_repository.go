package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lunchly_backend/internal/models"
)

// CustomerRepository defines the interface for customer-related database
// operations. Save is the sole write entry point: it inserts when the
// entity is unsaved and updates by id otherwise.
type CustomerRepository interface {
	All(ctx context.Context) ([]*models.Customer, error)
	Search(ctx context.Context, pattern string) ([]*models.Customer, error)
	Best(ctx context.Context) ([]*models.Customer, error)
	GetByID(ctx context.Context, id int64) (*models.Customer, error)
	Save(ctx context.Context, executor SQLExecutor, customer *models.Customer) error
}

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new instance of CustomerRepository.
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, first_name, last_name, phone, notes`

// scanCustomerRow maps one row to a Customer through the entity
// constructor, so a stored row that violates an entity invariant fails
// the load instead of materializing an invalid entity.
func scanCustomerRow(row scanner, withResCount bool) (*models.Customer, error) {
	var id int64
	var firstName, lastName string
	var phone, notes sql.NullString
	var resCount int

	dest := []interface{}{&id, &firstName, &lastName, &phone, &notes}
	if withResCount {
		dest = append(dest, &resCount)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	fields := models.CustomerFields{
		ID:        &id,
		FirstName: firstName,
		LastName:  lastName,
	}
	if phone.Valid {
		fields.Phone = &phone.String
	}
	if notes.Valid {
		fields.Notes = &notes.String
	}
	if withResCount {
		fields.ResCount = &resCount
	}

	customer, err := models.NewCustomer(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: stored customer %d failed validation: %v", ErrDatabaseError, id, err)
	}
	return customer, nil
}

func (r *customerRepository) queryCustomers(ctx context.Context, query string, withResCount bool, args ...interface{}) ([]*models.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying customers: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		customer, err := scanCustomerRow(rows, withResCount)
		if err != nil {
			if errors.Is(err, ErrDatabaseError) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: scanning customer: %v", ErrDatabaseError, err)
		}
		customers = append(customers, customer)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating customer rows: %v", ErrDatabaseError, err)
	}
	return customers, nil
}

// All returns every customer ordered by last name, then first name.
func (r *customerRepository) All(ctx context.Context) ([]*models.Customer, error) {
	query := `SELECT ` + customerColumns + `
	          FROM customers
	          ORDER BY last_name, first_name`
	return r.queryCustomers(ctx, query, false)
}

// Search returns customers whose first or last name matches the given
// ILIKE pattern. The caller supplies the %-wrapped pattern.
func (r *customerRepository) Search(ctx context.Context, pattern string) ([]*models.Customer, error) {
	query := `SELECT ` + customerColumns + `
	          FROM customers
	          WHERE first_name ILIKE $1 OR last_name ILIKE $1
	          ORDER BY last_name, first_name`
	return r.queryCustomers(ctx, query, false, pattern)
}

// Best returns the 10 customers with the most reservations, each
// carrying its reservation count, ordered by that count descending.
// Customers with no reservations are excluded by the inner join.
func (r *customerRepository) Best(ctx context.Context) ([]*models.Customer, error) {
	query := `SELECT c.id, c.first_name, c.last_name, c.phone, c.notes, COUNT(r.id) AS res_count
	          FROM customers c
	          JOIN reservations r ON c.id = r.customer_id
	          GROUP BY c.id
	          ORDER BY COUNT(r.id) DESC
	          LIMIT 10`
	return r.queryCustomers(ctx, query, true)
}

// GetByID retrieves a single customer by id.
func (r *customerRepository) GetByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `SELECT ` + customerColumns + `
	          FROM customers WHERE id = $1`
	customer, err := scanCustomerRow(r.db.QueryRowContext(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if errors.Is(err, ErrDatabaseError) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: getting customer by ID %d: %v", ErrDatabaseError, id, err)
	}
	return customer, nil
}

// Save persists the customer: an unsaved entity is inserted and the
// generated id assigned onto it in place, a saved one is updated by id.
func (r *customerRepository) Save(ctx context.Context, executor SQLExecutor, customer *models.Customer) error {
	if !customer.ID().Assigned() {
		query := `INSERT INTO customers (first_name, last_name, phone, notes)
		          VALUES ($1, $2, $3, $4)
		          RETURNING id`
		var id int64
		err := executor.QueryRowContext(ctx, query,
			customer.FirstName(), customer.LastName(), customer.Phone(), customer.Notes(),
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("%w: inserting customer: %v", ErrDatabaseError, err)
		}
		return customer.AssignID(id)
	}

	query := `UPDATE customers SET first_name = $1, last_name = $2, phone = $3, notes = $4
	          WHERE id = $5`
	result, err := executor.ExecContext(ctx, query,
		customer.FirstName(), customer.LastName(), customer.Phone(), customer.Notes(),
		customer.ID().Value(),
	)
	if err != nil {
		return fmt.Errorf("%w: updating customer ID %d: %v", ErrDatabaseError, customer.ID().Value(), err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: getting rows affected for customer ID %d: %v", ErrDatabaseError, customer.ID().Value(), err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
