package http

import (
	"errors"
	"net/http"

	"intent-router/internal/classifier"
	pkgErrors "intent-router/pkg/errors"
)

var (
	errEmptyUtterance   = pkgErrors.NewHTTPError(http.StatusBadRequest, classifier.ErrEmptyUtterance.Error())
	errInvalidSelection = pkgErrors.NewHTTPError(http.StatusBadRequest, "selected option is out of range")
	errIntentNotFound   = pkgErrors.NewHTTPError(http.StatusNotFound, "intent not found")
	errSessionRequired  = pkgErrors.NewHTTPError(http.StatusBadRequest, "session id is required")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unmapped is a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, classifier.ErrInvalidSelection):
		return errInvalidSelection
	case errors.Is(err, classifier.ErrIntentNotFound):
		return errIntentNotFound
	case errors.Is(err, classifier.ErrEmptyUtterance):
		return errEmptyUtterance
	default:
		return pkgErrors.ErrInternalServerError
	}
}
