package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
		wantMsg    string
	}{
		{"validation", Validation("bad input", nil), http.StatusUnprocessableEntity, "bad input"},
		{"authentication default", Authentication(""), http.StatusUnauthorized, "authentication failed"},
		{"authentication custom", Authentication("token expired"), http.StatusUnauthorized, "token expired"},
		{"authorization", Authorization(""), http.StatusForbidden, "not authorized"},
		{"not found", NotFound(""), http.StatusNotFound, "resource not found"},
		{"rate limit", RateLimit(""), http.StatusTooManyRequests, "rate limit exceeded"},
		{"processing", Processing("boom"), http.StatusInternalServerError, "boom"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.StatusCode != tc.wantStatus {
				t.Errorf("status = %d; want %d", tc.err.StatusCode, tc.wantStatus)
			}
			if tc.err.Error() != tc.wantMsg {
				t.Errorf("message = %q; want %q", tc.err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestStatusCode(t *testing.T) {
	if got := StatusCode(Validation("x", nil)); got != http.StatusUnprocessableEntity {
		t.Errorf("StatusCode = %d; want 422", got)
	}
	if got := StatusCode(errors.New("plain")); got != http.StatusInternalServerError {
		t.Errorf("StatusCode(plain) = %d; want 500", got)
	}

	wrapped := fmt.Errorf("looking up user: %w", NotFound(""))
	if got := StatusCode(wrapped); got != http.StatusNotFound {
		t.Errorf("StatusCode(wrapped) = %d; want 404", got)
	}
}

func TestValidationDetails(t *testing.T) {
	err := Validation("validation failed", map[string]interface{}{"email": "must be a valid email"})
	if err.Details["email"] != "must be a valid email" {
		t.Errorf("details = %v", err.Details)
	}
}
