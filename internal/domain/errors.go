package domain

import "errors"

var (
	// ErrProductNotFound is returned when a product id does not exist in the catalog
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCompletionFailed is returned when a reasoning service request fails
	ErrCompletionFailed = errors.New("reasoning service request failed")

	// ErrMalformedResponse is returned when a reasoning service response does not contain valid JSON
	ErrMalformedResponse = errors.New("reasoning service returned malformed response")
)
