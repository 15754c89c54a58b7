package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"backoffice-service/internal/entity"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/service"
)

type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct creates a new product --> POST /product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	req := new(entity.ProductRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	_, err := h.productService.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(201, map[string]string{"message": "Product added successfully"})
}

// GetProducts lists all products --> GET /products
func (h *ProductHandler) GetProducts(c echo.Context) error {
	products, err := h.productService.GetProducts(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, products)
}

// GetProductByID retrieves a product by ID --> GET /product/:id
func (h *ProductHandler) GetProductByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	product, err := h.productService.GetProductByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Product not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, product)
}

// UpdateProduct overwrites a product's name and price --> PUT /product/:id
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	req := new(entity.ProductUpdateRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	err = h.productService.UpdateProduct(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Product not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Product updated successfully"})
}

// DeleteProduct removes a product --> DELETE /product/:id
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	err = h.productService.DeleteProduct(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Product not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Product deleted successfully"})
}

// AdjustStock applies a signed delta to a product's stock --> PATCH /product/:id/stock
func (h *ProductHandler) AdjustStock(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	req := new(entity.StockAdjustRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid input"})
	}
	if req.Stock == nil {
		return c.JSON(400, map[string]string{"message": "Invalid input"})
	}

	_, err = h.productService.AdjustStock(c.Request().Context(), id, *req.Stock)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Product not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Stock level adjusted successfully"})
}
