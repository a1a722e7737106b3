package response

import (
	"math"
	"net/http"
	"strconv"

	deliverycontext "petnfc/internal/delivery/context"
	"petnfc/internal/domain/constants"
	domainerrors "petnfc/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	OK        bool   `json:"ok"`
	Data      any    `json:"data"`
	RequestID string `json:"request_id"`
}

// ErrorResponse defines the structure for error responses.
// ok and error match what the tag page already parses.
type ErrorResponse struct {
	OK        bool   `json:"ok"`
	Error     string `json:"error"`             // User-facing error message
	Code      string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Details   any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
	RequestID string `json:"request_id"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		OK:        true,
		Data:      data,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		OK:        false,
		Error:     message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var rateErr *domainerrors.RateLimitError
	if errors.As(err, &rateErr) {
		SetRetryAfter(c, rateErr)

		return Error(c, rateErr.HTTPCode(), rateErr.ErrorCode(), rateErr.Message(), rateErr.Details())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		var details any
		if appErr.Details() != "" {
			details = appErr.Details()
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}

// SetRetryAfter writes the Retry-After header in whole seconds, rounded up
func SetRetryAfter(c echo.Context, rateErr *domainerrors.RateLimitError) {
	seconds := int(math.Ceil(rateErr.RetryAfter().Seconds()))
	if seconds < 1 {
		seconds = 1
	}

	c.Response().Header().Set(constants.HeaderRetryAfter, strconv.Itoa(seconds))
}
