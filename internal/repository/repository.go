package repository

import "errors"

// ErrNotFound is returned when a query by id matches no row.
var ErrNotFound = errors.New("record not found")

// ErrCustomerInUse is returned when a customer delete is rejected because
// a customer account or order still references the customer.
var ErrCustomerInUse = errors.New("customer has dependent records")
