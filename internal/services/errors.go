package services

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Anything a
// service returns without one of these wrapped in is treated as a
// server-side failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid request")
)
