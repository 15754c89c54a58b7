package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"backoffice-service/internal/entity"
	"backoffice-service/internal/repository"
)

// OrderService is a service that provides order-related operations.
type OrderService struct {
	repo        repository.OrderRepository
	customers   repository.CustomerRepository
	kafkaWriter *kafka.Writer
}

// NewOrderService creates a new instance of OrderService. kafkaWriter may be
// nil, in which case no order-created events are published.
func NewOrderService(repo repository.OrderRepository, customers repository.CustomerRepository, kafkaWriter *kafka.Writer) *OrderService {
	return &OrderService{
		repo:        repo,
		customers:   customers,
		kafkaWriter: kafkaWriter,
	}
}

// CreateOrder persists the order after verifying the customer exists.
// Product ids that match no product are skipped silently.
func (s *OrderService) CreateOrder(ctx context.Context, req *entity.OrderRequest, orderDate time.Time) (*entity.Order, error) {
	if _, err := s.customers.GetCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownCustomer
		}
		return nil, err
	}

	order := &entity.Order{
		CustomerID: req.CustomerID,
		ProductIDs: req.ProductIDs,
		Quantity:   req.Quantity,
		OrderDate:  orderDate,
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating order")
		return nil, err
	}

	s.publishOrderCreated(ctx, created)
	return created, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	order, err := s.repo.GetOrderByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting order by ID %d", id)
		return nil, err
	}

	return order, nil
}

func (s *OrderService) GetOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := s.repo.GetOrders(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing orders")
		return nil, err
	}

	return orders, nil
}

func (s *OrderService) GetOrdersByDate(ctx context.Context, day time.Time) ([]*entity.Order, error) {
	orders, err := s.repo.GetOrdersByDate(ctx, day)
	if err != nil {
		logger.Error().Err(err).Msgf("Error listing orders for date %s", day.Format("2006-01-02"))
		return nil, err
	}

	return orders, nil
}

// publishOrderCreated emits the created order to Kafka. Publish failures are
// logged and never fail the request; the order is already committed.
func (s *OrderService) publishOrderCreated(ctx context.Context, order *entity.Order) {
	if s.kafkaWriter == nil {
		return
	}

	payload, err := json.Marshal(order)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling order %d event", order.ID)
		return
	}

	err = s.kafkaWriter.WriteMessages(ctx, kafka.Message{Value: payload})
	if err != nil {
		logger.Error().Err(err).Msgf("Error publishing order %d event", order.ID)
	}
}
