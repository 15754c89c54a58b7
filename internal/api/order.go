package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"backoffice-service/internal/entity"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/service"
)

// Order dates travel as plain YYYY-MM-DD strings.
const orderDateFormat = "2006-01-02"

type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder creates a new order --> POST /order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	req := new(entity.OrderRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid input"})
	}

	if req.CustomerID == 0 || len(req.ProductIDs) == 0 || req.Quantity == 0 || req.OrderDate == "" {
		return c.JSON(400, map[string]string{"message": "Invalid input"})
	}

	orderDate, err := time.Parse(orderDateFormat, req.OrderDate)
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid date format. Use YYYY-MM-DD"})
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), req, orderDate)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCustomer) {
			return c.JSON(400, map[string]string{"message": "Customer not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(201, order)
}

// GetOrders lists all orders --> GET /orders
func (h *OrderHandler) GetOrders(c echo.Context) error {
	orders, err := h.orderService.GetOrders(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, orders)
}

// GetOrderByID retrieves an order by ID --> GET /order/:id
func (h *OrderHandler) GetOrderByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	order, err := h.orderService.GetOrderByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Order not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, order)
}

// GetOrdersByDate lists orders placed on a given day --> GET /orders/date/:date
// The comparison uses the date component of order_date only.
func (h *OrderHandler) GetOrdersByDate(c echo.Context) error {
	day, err := time.Parse(orderDateFormat, c.Param("date"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid date format. Use YYYY-MM-DD"})
	}

	orders, err := h.orderService.GetOrdersByDate(c.Request().Context(), day)
	if err != nil {
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	if len(orders) == 0 {
		return c.JSON(404, map[string]string{"message": "No orders found for the specified date"})
	}

	return c.JSON(200, orders)
}
