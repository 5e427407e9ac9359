package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/campus-auth/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrNoToken             = errors.New("no session token set")
)

// APIError is a non-2xx answer of the server.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldError

	kind error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel matching StatusCode, if any.
func (e *APIError) Unwrap() error {
	return e.kind
}
