package handlers

import (
	"errors"
	"net/http"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/engine"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/services"
)

// statusFor maps service errors onto HTTP statuses: bad input is the
// caller's fault, missing history is unprocessable, anything unrecognized
// is a server-side failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, engine.ErrInsufficientData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
