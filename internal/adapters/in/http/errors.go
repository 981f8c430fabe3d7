package http

import (
	"errors"
	"net/http"

	"shipments/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps core error taxonomy to HTTP status codes and writes the
// uniform error body. Unclassified errors become 500 with a generic message
// so internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrAccessDenied):
		status = http.StatusForbidden
		message = "access denied"
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrRetriesExhausted):
		status = http.StatusServiceUnavailable
		message = "could not allocate a tracking number, try again"
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}
