package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"backoffice-service/internal/entity"
	"backoffice-service/internal/repository"
)

// memStore is a map-backed stand-in for the MySQL repositories. It
// implements every repository interface with the same error contract.
type memStore struct {
	mu        sync.Mutex
	nextID    int
	customers map[int]entity.Customer
	accounts  map[int]entity.CustomerAccount
	products  map[int]entity.Product
	orders    map[int]entity.Order
}

func newMemStore() *memStore {
	return &memStore{
		customers: make(map[int]entity.Customer),
		accounts:  make(map[int]entity.CustomerAccount),
		products:  make(map[int]entity.Product),
		orders:    make(map[int]entity.Order),
	}
}

func (s *memStore) newID() int {
	s.nextID++
	return s.nextID
}

func (s *memStore) CreateCustomer(ctx context.Context, customer *entity.Customer) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer.ID = s.newID()
	s.customers[customer.ID] = *customer
	return customer, nil
}

func (s *memStore) GetCustomerByID(ctx context.Context, id int) (*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, ok := s.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &customer, nil
}

func (s *memStore) GetCustomers(ctx context.Context) ([]*entity.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customers := make([]*entity.Customer, 0, len(s.customers))
	for _, customer := range s.customers {
		c := customer
		customers = append(customers, &c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func (s *memStore) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[customer.ID] = *customer
	return nil
}

func (s *memStore) DeleteCustomer(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[id]; !ok {
		return repository.ErrNotFound
	}
	for _, account := range s.accounts {
		if account.CustomerID == id {
			return repository.ErrCustomerInUse
		}
	}
	for _, order := range s.orders {
		if order.CustomerID == id {
			return repository.ErrCustomerInUse
		}
	}
	delete(s.customers, id)
	return nil
}

func (s *memStore) CreateAccount(ctx context.Context, account *entity.CustomerAccount) (*entity.CustomerAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account.ID = s.newID()
	s.accounts[account.ID] = *account
	return account, nil
}

func (s *memStore) GetAccountByID(ctx context.Context, id int) (*entity.CustomerAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &account, nil
}

func (s *memStore) GetAccounts(ctx context.Context) ([]*entity.CustomerAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := make([]*entity.CustomerAccount, 0, len(s.accounts))
	for _, account := range s.accounts {
		a := account
		accounts = append(accounts, &a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (s *memStore) UpdateAccount(ctx context.Context, account *entity.CustomerAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = *account
	return nil
}

func (s *memStore) DeleteAccount(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.accounts, id)
	return nil
}

func (s *memStore) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product.ID = s.newID()
	s.products[product.ID] = *product
	return product, nil
}

func (s *memStore) GetProductByID(ctx context.Context, id int) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &product, nil
}

func (s *memStore) GetProducts(ctx context.Context) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]*entity.Product, 0, len(s.products))
	for _, product := range s.products {
		p := product
		products = append(products, &p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (s *memStore) UpdateProduct(ctx context.Context, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.products[product.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Name = product.Name
	stored.Price = product.Price
	s.products[product.ID] = stored
	return nil
}

func (s *memStore) DeleteProduct(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.products, id)
	for orderID, order := range s.orders {
		kept := order.ProductIDs[:0]
		for _, productID := range order.ProductIDs {
			if productID != id {
				kept = append(kept, productID)
			}
		}
		order.ProductIDs = kept
		s.orders[orderID] = order
	}
	return nil
}

func (s *memStore) AdjustStock(ctx context.Context, id int, delta int) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	product.Stock += delta
	s.products[id] = product
	return &product, nil
}

func (s *memStore) CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]bool)
	valid := make([]int, 0, len(order.ProductIDs))
	for _, id := range order.ProductIDs {
		if _, ok := s.products[id]; ok && !seen[id] {
			seen[id] = true
			valid = append(valid, id)
		}
	}

	order.ID = s.newID()
	order.ProductIDs = valid
	s.orders[order.ID] = *order
	return order, nil
}

func (s *memStore) GetOrderByID(ctx context.Context, id int) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &order, nil
}

func (s *memStore) GetOrders(ctx context.Context) ([]*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]*entity.Order, 0, len(s.orders))
	for _, order := range s.orders {
		o := order
		orders = append(orders, &o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (s *memStore) GetOrdersByDate(ctx context.Context, day time.Time) ([]*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]*entity.Order, 0)
	for _, order := range s.orders {
		y1, m1, d1 := order.OrderDate.Date()
		y2, m2, d2 := day.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			o := order
			orders = append(orders, &o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}
