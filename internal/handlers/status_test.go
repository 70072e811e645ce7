package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/engine"
	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/services"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", fmt.Errorf("validate record: %w", engine.ErrInvalidInput), http.StatusBadRequest},
		{"insufficient data", fmt.Errorf("organizational report: %w", engine.ErrInsufficientData), http.StatusUnprocessableEntity},
		{"validation", fmt.Errorf("email already registered: %w", services.ErrValidation), http.StatusBadRequest},
		{"not found", fmt.Errorf("alert: %w", services.ErrNotFound), http.StatusNotFound},
		{"bad credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unexpected failure", fmt.Errorf("persist record: connection reset"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
