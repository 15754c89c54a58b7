package service

import (
	"context"
	"errors"

	"backoffice-service/internal/entity"
	"backoffice-service/internal/repository"
)

type AccountService struct {
	repo      repository.AccountRepository
	customers repository.CustomerRepository
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(repo repository.AccountRepository, customers repository.CustomerRepository) *AccountService {
	return &AccountService{repo: repo, customers: customers}
}

// CreateAccount verifies the referenced customer exists before inserting, so
// an account can never be created against a missing customer.
func (s *AccountService) CreateAccount(ctx context.Context, req *entity.CustomerAccountRequest) (*entity.CustomerAccount, error) {
	if _, err := s.customers.GetCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownCustomer
		}
		return nil, err
	}

	account := &entity.CustomerAccount{
		Username:   req.Username,
		Password:   req.Password,
		CustomerID: req.CustomerID,
	}

	created, err := s.repo.CreateAccount(ctx, account)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating customer account")
		return nil, err
	}

	return created, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, id int) (*entity.CustomerAccount, error) {
	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting customer account by ID %d", id)
		return nil, err
	}

	return account, nil
}

func (s *AccountService) GetAccounts(ctx context.Context) ([]*entity.CustomerAccount, error) {
	accounts, err := s.repo.GetAccounts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing customer accounts")
		return nil, err
	}

	return accounts, nil
}

// UpdateAccount overwrites username and password. The customer reference is
// fixed at creation time.
func (s *AccountService) UpdateAccount(ctx context.Context, id int, req *entity.CustomerAccountRequest) error {
	account, err := s.repo.GetAccountByID(ctx, id)
	if err != nil {
		return err
	}

	account.Username = req.Username
	account.Password = req.Password

	if err := s.repo.UpdateAccount(ctx, account); err != nil {
		logger.Error().Err(err).Msgf("Error updating customer account %d", id)
		return err
	}

	return nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, id int) error {
	if err := s.repo.DeleteAccount(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting customer account %d", id)
		return err
	}

	return nil
}
