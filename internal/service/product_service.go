package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"backoffice-service/internal/entity"
	"backoffice-service/internal/repository"
)

type ProductService struct {
	repo repository.ProductRepository
	rdb  *redis.Client
}

// NewProductService creates a new instance of ProductService. rdb may be nil,
// in which case the read-through cache is disabled.
func NewProductService(repo repository.ProductRepository, rdb *redis.Client) *ProductService {
	return &ProductService{repo: repo, rdb: rdb}
}

func productCacheKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *ProductService) CreateProduct(ctx context.Context, req *entity.ProductRequest) (*entity.Product, error) {
	product := &entity.Product{
		Name:  req.Name,
		Price: *req.Price,
		Stock: *req.Stock,
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating product")
		return nil, err
	}

	s.cacheProduct(ctx, created)
	return created, nil
}

// GetProductByID reads through the cache: a hit skips the database, a miss
// loads the product and populates the cache.
func (s *ProductService) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, productCacheKey(id)).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			logger.Error().Err(err).Msgf("Error getting product %d from cache", id)
		}

		if cached != "" {
			var product entity.Product
			if err := json.Unmarshal([]byte(cached), &product); err != nil {
				logger.Error().Err(err).Msgf("Error unmarshalling cached product %d", id)
			} else {
				return &product, nil
			}
		}
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting product by ID %d", id)
		return nil, err
	}

	s.cacheProduct(ctx, product)
	return product, nil
}

func (s *ProductService) GetProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := s.repo.GetProducts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing products")
		return nil, err
	}

	return products, nil
}

// UpdateProduct overwrites name and price from the validated payload; stock
// is only mutated through AdjustStock.
func (s *ProductService) UpdateProduct(ctx context.Context, id int, req *entity.ProductUpdateRequest) error {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return err
	}

	product.Name = req.Name
	product.Price = *req.Price

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		logger.Error().Err(err).Msgf("Error updating product %d", id)
		return err
	}

	s.cacheProduct(ctx, product)
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		logger.Error().Err(err).Msgf("Error deleting product %d", id)
		return err
	}

	if s.rdb != nil {
		if err := s.rdb.Del(ctx, productCacheKey(id)).Err(); err != nil {
			logger.Error().Err(err).Msgf("Error deleting product %d from cache", id)
		}
	}

	return nil
}

// AdjustStock applies a signed delta to the product's stock. Negative
// resulting stock is allowed and read as backorder.
func (s *ProductService) AdjustStock(ctx context.Context, id int, delta int) (*entity.Product, error) {
	product, err := s.repo.AdjustStock(ctx, id, delta)
	if err != nil {
		logger.Error().Err(err).Msgf("Error adjusting stock for product %d", id)
		return nil, err
	}

	s.cacheProduct(ctx, product)
	return product, nil
}

func (s *ProductService) cacheProduct(ctx context.Context, product *entity.Product) {
	if s.rdb == nil {
		return
	}

	payload, err := json.Marshal(product)
	if err != nil {
		logger.Error().Err(err).Msgf("Error marshalling product %d", product.ID)
		return
	}

	if err := s.rdb.Set(ctx, productCacheKey(product.ID), payload, 0).Err(); err != nil {
		logger.Error().Err(err).Msgf("Error setting product %d in cache", product.ID)
	}
}
