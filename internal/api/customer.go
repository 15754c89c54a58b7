package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"backoffice-service/internal/entity"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/service"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new instance of CustomerHandler
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer creates a new customer --> POST /customer
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	req := new(entity.CustomerRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	customer, err := h.customerService.CreateCustomer(c.Request().Context(), req)
	if err != nil {
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(201, customer)
}

// GetCustomers lists all customers --> GET /customer
func (h *CustomerHandler) GetCustomers(c echo.Context) error {
	customers, err := h.customerService.GetCustomers(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, customers)
}

// GetCustomerByID retrieves a customer by ID --> GET /customer/:id
func (h *CustomerHandler) GetCustomerByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	customer, err := h.customerService.GetCustomerByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Customer not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, customer)
}

// UpdateCustomer overwrites a customer's fields --> PUT /customer/:id
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	req := new(entity.CustomerRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	err = h.customerService.UpdateCustomer(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Customer not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Customer updated successfully"})
}

// DeleteCustomer removes a customer --> DELETE /customer/:id
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	err = h.customerService.DeleteCustomer(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Customer not found"})
		}
		if errors.Is(err, repository.ErrCustomerInUse) {
			return c.JSON(409, map[string]string{"message": "Customer has dependent records"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Customer deleted successfully"})
}
