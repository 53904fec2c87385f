package domain

import "errors"

var (
	// ErrMissingFields is returned when a registration omits required fields.
	ErrMissingFields = errors.New("all fields are required")

	// ErrInvalidField is returned when a field fails validation.
	ErrInvalidField = errors.New("invalid field")

	// ErrNotVendor is returned when a product write is attempted by an
	// address with no vendor record.
	ErrNotVendor = errors.New("signer is not a registered vendor")

	// ErrTxFailed is returned when a submitted transaction does not reach a
	// successful receipt.
	ErrTxFailed = errors.New("transaction failed")
)
