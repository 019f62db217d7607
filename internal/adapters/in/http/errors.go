package http

import (
	"errors"
	"net/http"

	"brickmarket/internal/core/application/usecases/commands"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusForError maps domain and application errors to HTTP status codes.
//
// Visibility violations surface as errs.ErrObjectNotFound by the time they
// reach this mapper, so foreign orders are indistinguishable from missing
// ones in the response.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrTransitionForbidden):
		return http.StatusForbidden
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrCartItemsAreRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as the JSON error envelope. Internal failures are
// logged and reported with a generic message so storage details never leak
// to clients.
func (s *Server) writeError(c echo.Context, err error) error {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err)
		message = "internal server error"
	}

	return c.JSON(status, Error{Code: status, Message: message})
}
