package service

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ErrUnknownCustomer is returned when an operation references a customer
// that does not exist.
var ErrUnknownCustomer = errors.New("customer not found")
