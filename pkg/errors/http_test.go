package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "intent-router/pkg/errors"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "HTTP Error", err: pkgErrors.NewHTTPError(http.StatusNotFound, "intent not found"), want: http.StatusNotFound},
		{name: "Wrapped HTTP Error", err: fmt.Errorf("handler: %w", pkgErrors.ErrInternalServerError), want: http.StatusInternalServerError},
		{name: "Plain Error", err: errors.New("bad input"), want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pkgErrors.StatusOf(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestHTTPErrorMessage(t *testing.T) {
	err := pkgErrors.NewHTTPError(http.StatusConflict, "option out of range")
	if err.Error() != "option out of range" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
