package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fleetboard/internal/pkg/errs"
)

// writeError translates domain errors into HTTP responses by error identity:
// validation and state conflicts map to 400, missing entities to 404 with
// distinguishing text, everything else to 500. Internal detail leaks only
// outside production mode.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		message := "Order not found"
		if notFound.ParamName == "driver" {
			message = "Driver not found"
		}
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: message,
		})
	}

	if errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrStateConflict) {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	message := "Internal server error"
	if !s.production {
		message = err.Error()
	}
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
