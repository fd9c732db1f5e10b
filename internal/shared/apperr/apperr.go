package apperr

import (
	"errors"
	"net/http"
)

// ServiceError carries a caller-facing message plus the HTTP status it maps to.
type ServiceError struct {
	Message string
	Status  int
}

// New constructs a ServiceError with the given message and status.
func New(message string, status int) *ServiceError {
	return &ServiceError{Message: message, Status: status}
}

func (e *ServiceError) Error() string {
	return e.Message
}

// StatusOf returns the HTTP status carried by err, or 500 for anything else.
func StatusOf(err error) int {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Status
	}
	return http.StatusInternalServerError
}
