package repository

import (
	"context"
	"database/sql"
	"errors"

	"backoffice-service/internal/entity"
)

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *entity.CustomerAccount) (*entity.CustomerAccount, error)
	GetAccountByID(ctx context.Context, id int) (*entity.CustomerAccount, error)
	GetAccounts(ctx context.Context) ([]*entity.CustomerAccount, error)
	UpdateAccount(ctx context.Context, account *entity.CustomerAccount) error
	DeleteAccount(ctx context.Context, id int) error
}

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepository{db}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account *entity.CustomerAccount) (*entity.CustomerAccount, error) {
	query := `INSERT INTO customer_accounts (username, password, customer_id) VALUES (?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, account.Username, account.Password, account.CustomerID)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	account.ID = int(id)
	return account, nil
}

func (r *accountRepository) GetAccountByID(ctx context.Context, id int) (*entity.CustomerAccount, error) {
	account := &entity.CustomerAccount{}
	query := `SELECT id, username, password, customer_id FROM customer_accounts WHERE id = ?`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&account.ID, &account.Username, &account.Password, &account.CustomerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *accountRepository) GetAccounts(ctx context.Context) ([]*entity.CustomerAccount, error) {
	accounts := make([]*entity.CustomerAccount, 0)

	query := `SELECT id, username, password, customer_id FROM customer_accounts`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var account entity.CustomerAccount
		err := rows.Scan(&account.ID, &account.Username, &account.Password, &account.CustomerID)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, &account)
	}

	return accounts, rows.Err()
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account *entity.CustomerAccount) error {
	query := `UPDATE customer_accounts SET username = ?, password = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, account.Username, account.Password, account.ID)
	return err
}

func (r *accountRepository) DeleteAccount(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customer_accounts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
