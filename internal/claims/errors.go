package claims

import (
	"errors"
	"net/http"
)

// Domain errors for claim operations.
var (
	ErrNotFound      = errors.New("claim not found")
	ErrDuplicate     = errors.New("claim already exists")
	ErrInvalidID     = errors.New("invalid claim id")
	ErrInvalidRecord = errors.New("invalid claim record")
)

// MapHTTPStatus maps claim domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidID) || errors.Is(err, ErrInvalidRecord) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
