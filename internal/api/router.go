package api

import (
	"time"

	"github.com/labstack/echo/v4"
)

// Register wires every route onto e.
func Register(e *echo.Echo, customers *CustomerHandler, accounts *AccountHandler, products *ProductHandler, orders *OrderHandler) {
	e.GET("/", func(c echo.Context) error {
		return c.String(200, "Welcome to the E-commerce API")
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "backoffice-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.POST("/customer", customers.CreateCustomer)
	e.GET("/customer", customers.GetCustomers)
	e.GET("/customer/:id", customers.GetCustomerByID)
	e.PUT("/customer/:id", customers.UpdateCustomer)
	e.DELETE("/customer/:id", customers.DeleteCustomer)

	e.POST("/customer_account", accounts.CreateAccount)
	e.GET("/customer_account", accounts.GetAccounts)
	e.GET("/customer_account/:id", accounts.GetAccountByID)
	e.PUT("/customer_account/:id", accounts.UpdateAccount)
	e.DELETE("/customer_account/:id", accounts.DeleteAccount)

	e.POST("/product", products.CreateProduct)
	e.GET("/products", products.GetProducts)
	e.GET("/product/:id", products.GetProductByID)
	e.PUT("/product/:id", products.UpdateProduct)
	e.DELETE("/product/:id", products.DeleteProduct)
	e.PATCH("/product/:id/stock", products.AdjustStock)

	e.POST("/order", orders.CreateOrder)
	e.GET("/orders", orders.GetOrders)
	e.GET("/order/:id", orders.GetOrderByID)
	e.GET("/orders/date/:date", orders.GetOrdersByDate)
}
