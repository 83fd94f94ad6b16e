package inventory

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrMissingID       = errors.New("vehicle has no id")
)

// StatusError is returned when the inventory service answers with a non-2xx status
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("inventory service returned status %d for %s %s", e.StatusCode, e.Method, e.URL)
	}
	return fmt.Sprintf("inventory service returned status %d for %s %s: %s", e.StatusCode, e.Method, e.URL, e.Body)
}

// Is reports a 404 as ErrVehicleNotFound
func (e *StatusError) Is(target error) bool {
	return target == ErrVehicleNotFound && e.StatusCode == http.StatusNotFound
}

// UnknownFieldError is returned by FilterVehicles when a vehicle object has no value for a criteria key
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("vehicle has no field %q", e.Field)
}
