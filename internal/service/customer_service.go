package service

import (
	"context"

	"backoffice-service/internal/entity"
	"backoffice-service/internal/repository"
)

type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService creates a new instance of CustomerService.
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, req *entity.CustomerRequest) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	created, err := s.repo.CreateCustomer(ctx, customer)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating customer")
		return nil, err
	}

	return created, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, id int) (*entity.Customer, error) {
	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting customer by ID %d", id)
		return nil, err
	}

	return customer, nil
}

func (s *CustomerService) GetCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := s.repo.GetCustomers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing customers")
		return nil, err
	}

	return customers, nil
}

// UpdateCustomer overwrites all mutable fields from the validated payload.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, req *entity.CustomerRequest) error {
	customer, err := s.repo.GetCustomerByID(ctx, id)
	if err != nil {
		return err
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.Phone = req.Phone

	if err := s.repo.UpdateCustomer(ctx, customer); err != nil {
		logger.Error().Err(err).Msgf("Error updating customer %d", id)
		return err
	}

	return nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.repo.DeleteCustomer(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting customer %d", id)
		return err
	}

	return nil
}
