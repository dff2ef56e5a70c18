package agreements

import (
	"errors"
	"net/http"
)

// Domain errors for agreement operations.
var (
	ErrNotFound  = errors.New("agreement not found")
	ErrDuplicate = errors.New("agreement already exists")
	ErrInvalidID = errors.New("invalid agreement id")
)

// MapHTTPStatus maps agreement domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
