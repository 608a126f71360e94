package weather

import (
	"errors"
	"fmt"
)

// Sentinel errors for input validation failures that happen before any
// network call is made.
var (
	// ErrMissingInput indicates an empty city name after trimming
	ErrMissingInput = errors.New("city name is empty")

	// ErrMissingCredential indicates the API key environment variable is unset
	ErrMissingCredential = errors.New("API key not set")
)

// NetworkError indicates the request never produced an HTTP response:
// a timeout, a connection failure, or cancellation.
type NetworkError struct {
	Err     error
	Timeout bool
}

func (e *NetworkError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request timed out: %v", e.Err)
	}
	return fmt.Sprintf("could not connect to weather service: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// InvalidCredentialError indicates the provider rejected the API key (401/403)
type InvalidCredentialError struct {
	StatusCode int
}

func (e *InvalidCredentialError) Error() string {
	return fmt.Sprintf("invalid API key (HTTP %d)", e.StatusCode)
}

// CityNotFoundError indicates the provider could not resolve the city name
type CityNotFoundError struct {
	City string
}

func (e *CityNotFoundError) Error() string {
	return fmt.Sprintf("city %q not found", e.City)
}

// IncompleteDataError indicates a 200 response that is missing a field the
// report requires, or a body that is not valid JSON.
type IncompleteDataError struct {
	Field string
	Err   error
}

func (e *IncompleteDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed weather data: %v", e.Err)
	}
	return fmt.Sprintf("weather data is missing %s", e.Field)
}

func (e *IncompleteDataError) Unwrap() error {
	return e.Err
}

// ProviderError indicates a non-2xx status not covered by a more specific
// category.
type ProviderError struct {
	StatusCode int
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("weather service returned HTTP %d", e.StatusCode)
}
