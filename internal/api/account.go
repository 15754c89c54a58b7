package api

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"backoffice-service/internal/entity"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/service"
)

type AccountHandler struct {
	accountService service.AccountService
}

// NewAccountHandler creates a new instance of AccountHandler
func NewAccountHandler(accountService service.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount creates a new customer account --> POST /customer_account
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	req := new(entity.CustomerAccountRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	_, err := h.accountService.CreateAccount(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCustomer) {
			return c.JSON(400, map[string]string{"message": "Customer not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(201, map[string]string{"message": "Customer account added successfully"})
}

// GetAccounts lists all customer accounts --> GET /customer_account
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	accounts, err := h.accountService.GetAccounts(c.Request().Context())
	if err != nil {
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, accounts)
}

// GetAccountByID retrieves a customer account by ID --> GET /customer_account/:id
func (h *AccountHandler) GetAccountByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	account, err := h.accountService.GetAccountByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Customer account not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, account)
}

// UpdateAccount overwrites an account's credentials --> PUT /customer_account/:id
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	req := new(entity.CustomerAccountRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid request payload"})
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	err = h.accountService.UpdateAccount(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Customer account not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Customer account updated successfully"})
}

// DeleteAccount removes a customer account --> DELETE /customer_account/:id
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(400, map[string]string{"message": "Invalid ID"})
	}

	err = h.accountService.DeleteAccount(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(404, map[string]string{"message": "Customer account not found"})
		}
		return c.JSON(500, map[string]string{"message": err.Error()})
	}

	return c.JSON(200, map[string]string{"message": "Customer account deleted successfully"})
}
