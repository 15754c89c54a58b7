package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice-service/internal/entity"
)

func TestCreateCustomerInvalidEmail(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(t, e, http.MethodPost, "/customer", map[string]interface{}{
		"name":  "Ada Lovelace",
		"email": "not-an-email",
		"phone": "555-0100",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errs map[string][]string
	decode(t, rec, &errs)
	assert.Contains(t, errs["email"], "Not a valid email address.")
}

func TestCreateCustomerMissingFields(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(t, e, http.MethodPost, "/customer", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errs map[string][]string
	decode(t, rec, &errs)
	for _, field := range []string{"name", "email", "phone"} {
		assert.Contains(t, errs[field], "Missing data for required field.", "field %s", field)
	}
}

func TestCustomerRoundTrip(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(t, e, http.MethodPost, "/customer", map[string]interface{}{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Customer
	decode(t, rec, &created)
	require.NotZero(t, created.ID)

	rec = doRequest(t, e, http.MethodGet, fmt.Sprintf("/customer/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched entity.Customer
	decode(t, rec, &fetched)
	assert.Equal(t, created, fetched)

	rec = doRequest(t, e, http.MethodGet, "/customer", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var customers []entity.Customer
	decode(t, rec, &customers)
	assert.Equal(t, []entity.Customer{created}, customers)
}

func TestGetCustomerNotFound(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(t, e, http.MethodGet, "/customer/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCustomer(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(t, e, http.MethodPost, "/customer", map[string]interface{}{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Customer
	decode(t, rec, &created)

	rec = doRequest(t, e, http.MethodPut, fmt.Sprintf("/customer/%d", created.ID), map[string]interface{}{
		"name":  "Ada King",
		"email": "ada.king@example.com",
		"phone": "555-0199",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, e, http.MethodGet, fmt.Sprintf("/customer/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched entity.Customer
	decode(t, rec, &fetched)
	assert.Equal(t, "Ada King", fetched.Name)
	assert.Equal(t, "ada.king@example.com", fetched.Email)
	assert.Equal(t, "555-0199", fetched.Phone)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(t, e, http.MethodPut, "/customer/99", map[string]interface{}{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "555-0100",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCustomer(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(t, e, http.MethodPost, "/customer", map[string]interface{}{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Customer
	decode(t, rec, &created)

	rec = doRequest(t, e, http.MethodDelete, fmt.Sprintf("/customer/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, e, http.MethodGet, fmt.Sprintf("/customer/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCustomerNotFound(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(t, e, http.MethodDelete, "/customer/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCustomerWithAccountRejected(t *testing.T) {
	e, _ := newTestServer()

	rec := doRequest(t, e, http.MethodPost, "/customer", map[string]interface{}{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Customer
	decode(t, rec, &created)

	rec = doRequest(t, e, http.MethodPost, "/customer_account", map[string]interface{}{
		"username":    "ada",
		"password":    "analytical",
		"customer_id": created.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, e, http.MethodDelete, fmt.Sprintf("/customer/%d", created.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Customer must still be there.
	rec = doRequest(t, e, http.MethodGet, fmt.Sprintf("/customer/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteCustomerWithOrderRejected(t *testing.T) {
	e, store := newTestServer()

	rec := doRequest(t, e, http.MethodPost, "/customer", map[string]interface{}{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Customer
	decode(t, rec, &created)

	product, err := store.CreateProduct(t.Context(), &entity.Product{Name: "Widget", Price: 9.99, Stock: 5})
	require.NoError(t, err)

	rec = doRequest(t, e, http.MethodPost, "/order", map[string]interface{}{
		"customer_id": created.ID,
		"product_ids": []int{product.ID},
		"quantity":    2,
		"order_date":  "2024-01-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, e, http.MethodDelete, fmt.Sprintf("/customer/%d", created.ID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
