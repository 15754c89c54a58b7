package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"backoffice-service/internal/entity"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
	GetOrderByID(ctx context.Context, id int) (*entity.Order, error)
	GetOrders(ctx context.Context) ([]*entity.Order, error)
	GetOrdersByDate(ctx context.Context, day time.Time) ([]*entity.Order, error)
}

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db}
}

// CreateOrder inserts the order row and its product associations in one
// transaction. Product ids that match no product are skipped; duplicates
// collapse into a single association row.
func (r *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	orderQuery := `INSERT INTO orders (customer_id, order_date, quantity) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, orderQuery, order.CustomerID, order.OrderDate, order.Quantity)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	validIDs, err := filterExistingProducts(ctx, tx, order.ProductIDs)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if len(validIDs) > 0 {
		productQuery := `INSERT INTO order_product (order_id, product_id) VALUES `

		var values []interface{}
		for _, productID := range validIDs {
			productQuery += "(?, ?),"
			values = append(values, orderID, productID)
		}

		// Remove the trailing comma
		productQuery = productQuery[:len(productQuery)-1]

		_, err = tx.ExecContext(ctx, productQuery, values...)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	order.ID = int(orderID)
	order.ProductIDs = validIDs
	return order, nil
}

func filterExistingProducts(ctx context.Context, tx *sql.Tx, ids []int) ([]int, error) {
	valid := make([]int, 0, len(ids))
	if len(ids) == 0 {
		return valid, nil
	}

	query := `SELECT id FROM products WHERE id IN (` + placeholders(len(ids)) + `)`
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	existing := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		existing[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Preserve request order, drop unknown and duplicate ids.
	seen := make(map[int]bool)
	for _, id := range ids {
		if existing[id] && !seen[id] {
			seen[id] = true
			valid = append(valid, id)
		}
	}

	return valid, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func (r *orderRepository) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	order := &entity.Order{}
	query := `SELECT id, customer_id, order_date, quantity FROM orders WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&order.ID, &order.CustomerID, &order.OrderDate, &order.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.attachProductIDs(ctx, []*entity.Order{order}); err != nil {
		return nil, err
	}

	return order, nil
}

func (r *orderRepository) GetOrders(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT id, customer_id, order_date, quantity FROM orders`
	return r.queryOrders(ctx, query)
}

// GetOrdersByDate matches on the date component of order_date only.
func (r *orderRepository) GetOrdersByDate(ctx context.Context, day time.Time) ([]*entity.Order, error) {
	query := `SELECT id, customer_id, order_date, quantity FROM orders WHERE DATE(order_date) = ?`
	return r.queryOrders(ctx, query, day.Format("2006-01-02"))
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]*entity.Order, error) {
	orders := make([]*entity.Order, 0)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var order entity.Order
		err := rows.Scan(&order.ID, &order.CustomerID, &order.OrderDate, &order.Quantity)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachProductIDs(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) attachProductIDs(ctx context.Context, orders []*entity.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[int]*entity.Order, len(orders))
	args := make([]interface{}, 0, len(orders))
	for _, order := range orders {
		order.ProductIDs = make([]int, 0)
		byID[order.ID] = order
		args = append(args, order.ID)
	}

	query := `SELECT order_id, product_id FROM order_product WHERE order_id IN (` + placeholders(len(orders)) + `)`
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, productID int
		if err := rows.Scan(&orderID, &productID); err != nil {
			return err
		}
		if order, ok := byID[orderID]; ok {
			order.ProductIDs = append(order.ProductIDs, productID)
		}
	}

	return rows.Err()
}
