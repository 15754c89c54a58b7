package repository

import (
	"context"
	"database/sql"
	"errors"

	"backoffice-service/internal/entity"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	GetCustomerByID(ctx context.Context, id int) (*entity.Customer, error)
	GetCustomers(ctx context.Context) ([]*entity.Customer, error)
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error
	DeleteCustomer(ctx context.Context, id int) error
}

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db}
}

func (r *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	query := `INSERT INTO customers (name, email, phone) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, customer.Name, customer.Email, customer.Phone)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	customer.ID = int(id)
	return customer, nil
}

func (r *customerRepository) GetCustomerByID(ctx context.Context, id int) (*entity.Customer, error) {
	customer := &entity.Customer{}
	query := `SELECT id, name, email, phone FROM customers WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return customer, nil
}

func (r *customerRepository) GetCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers := make([]*entity.Customer, 0)

	query := `SELECT id, name, email, phone FROM customers`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var customer entity.Customer
		err := rows.Scan(&customer.ID, &customer.Name, &customer.Email, &customer.Phone)
		if err != nil {
			return nil, err
		}
		customers = append(customers, &customer)
	}

	return customers, rows.Err()
}

func (r *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	query := `UPDATE customers SET name = ?, email = ?, phone = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, customer.Name, customer.Email, customer.Phone, customer.ID)
	return err
}

// DeleteCustomer removes a customer unless a customer account or order still
// references it, in which case the delete is rejected with ErrCustomerInUse.
func (r *customerRepository) DeleteCustomer(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT id FROM customers WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	var inUse bool
	query := `SELECT EXISTS (SELECT 1 FROM customer_accounts WHERE customer_id = ?) OR EXISTS (SELECT 1 FROM orders WHERE customer_id = ?)`
	err = tx.QueryRowContext(ctx, query, id, id).Scan(&inUse)
	if err != nil {
		tx.Rollback()
		return err
	}
	if inUse {
		tx.Rollback()
		return ErrCustomerInUse
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
