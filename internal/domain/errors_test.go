package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	plain := NewAppError(CodeValidation, "bad input", nil)
	if plain.Error() != "bad input" {
		t.Errorf("Error()=%q", plain.Error())
	}

	wrapped := NewAppError(CodeInternal, "database error", errors.New("disk full"))
	if wrapped.Error() != "database error: disk full" {
		t.Errorf("Error()=%q", wrapped.Error())
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found sentinel", ErrNotFound, IsNotFound, true},
		{"fresh not found", NewAppError(CodeNotFound, "gone", nil), IsNotFound, true},
		{"wrapped not found", fmt.Errorf("lookup: %w", ErrNotFound), IsNotFound, true},
		{"wrong code", ErrAlreadyExists, IsNotFound, false},
		{"plain error", errors.New("boom"), IsNotFound, false},
		{"nil", nil, IsNotFound, false},
		{"conflict", NewAppError(CodeConflict, "busy", nil), IsConflict, true},
		{"invalid parameter", NewAppError(CodeInvalidParameter, "bad sort", nil), IsInvalidParameter, true},
		{"validation", ErrValidation, IsValidation, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHTTPStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrAlreadyExists, http.StatusConflict},
		{NewAppError(CodeConflict, "busy", nil), http.StatusConflict},
		{ErrValidation, http.StatusBadRequest},
		{NewAppError(CodeInvalidParameter, "bad cursor", nil), http.StatusBadRequest},
		{ErrInternal, http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatusCode(tt.err); got != tt.want {
			t.Errorf("HTTPStatusCode(%v)=%d; want %d", tt.err, got, tt.want)
		}
	}
}
