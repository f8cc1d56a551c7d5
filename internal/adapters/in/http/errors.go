package http

import (
	"errors"
	"net/http"

	"pharmadelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain errors to HTTP status codes with a uniform body.
// Validation failures are 400, missing aggregates 404, role and actor
// violations 403, and lost races (claim arbitration, stale status, stock
// floor) 409. Anything unrecognized is a 500 with a generic message.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondWith(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrForbidden):
		return respondWith(ctx, http.StatusForbidden, err)
	case errors.Is(err, errs.ErrAlreadyClaimed),
		errors.Is(err, errs.ErrStateConflict),
		errors.Is(err, errs.ErrInsufficientStock):
		return respondWith(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return respondWith(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func respondWith(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

// respondBadRequest reports malformed input that never reached a command
// constructor, such as an unparseable body or path parameter.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
