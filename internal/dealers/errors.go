package dealers

import (
	"errors"
	"net/http"
)

// Domain errors for dealer operations.
var (
	ErrNotFound  = errors.New("dealer not found")
	ErrDuplicate = errors.New("dealer already exists")
	ErrInvalidID = errors.New("invalid dealer id")
)

// MapHTTPStatus maps dealer domain errors to appropriate HTTP status codes.
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
