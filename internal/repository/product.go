package repository

import (
	"context"
	"database/sql"
	"errors"

	"backoffice-service/internal/entity"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	GetProductByID(ctx context.Context, id int) (*entity.Product, error)
	GetProducts(ctx context.Context) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, product *entity.Product) error
	DeleteProduct(ctx context.Context, id int) error
	AdjustStock(ctx context.Context, id int, delta int) (*entity.Product, error)
}

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	query := `INSERT INTO products (name, price, stock) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, product.Name, product.Price, product.Stock)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	product.ID = int(id)
	return product, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	product := &entity.Product{}
	query := `SELECT id, name, price, stock FROM products WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&product.ID, &product.Name, &product.Price, &product.Stock)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) GetProducts(ctx context.Context) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0)

	query := `SELECT id, name, price, stock FROM products`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var product entity.Product
		err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.Stock)
		if err != nil {
			return nil, err
		}
		products = append(products, &product)
	}

	return products, rows.Err()
}

// UpdateProduct overwrites name and price. Stock is only mutated through
// AdjustStock.
func (r *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	query := `UPDATE products SET name = ?, price = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, product.Name, product.Price, product.ID)
	return err
}

// DeleteProduct removes a product and detaches it from any orders that
// reference it. The orders themselves are untouched.
func (r *productRepository) DeleteProduct(ctx context.Context, id int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT id FROM products WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM order_product WHERE product_id = ?`, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// AdjustStock applies a signed delta as a single atomic UPDATE so that
// concurrent adjustments to the same product serialize on the row lock
// instead of losing updates. Stock may go negative (backorder).
func (r *productRepository) AdjustStock(ctx context.Context, id int, delta int) (*entity.Product, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT id FROM products WHERE id = ?`, id).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		tx.Rollback()
		return nil, ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE products SET stock = stock + ? WHERE id = ?`, delta, id)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	product := &entity.Product{}
	err = tx.QueryRowContext(ctx, `SELECT id, name, price, stock FROM products WHERE id = ?`, id).
		Scan(&product.ID, &product.Name, &product.Price, &product.Stock)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return product, nil
}
