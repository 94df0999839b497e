package domain

import "errors"

var (
	// ErrNotFound is returned when a customer or order cannot be found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidProduct is returned when a routed vendor record fails coercion or validation
	ErrInvalidProduct = errors.New("invalid product record")

	// ErrNotNumeric is returned when a value cannot be parsed as a finite number
	ErrNotNumeric = errors.New("value is not numeric")

	// ErrVendorFetchFailure is returned when a vendor feed request fails
	ErrVendorFetchFailure = errors.New("vendor feed request failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
