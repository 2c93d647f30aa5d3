package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"storefront/internal/http/middleware"
	"storefront/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "EMAIL_TAKEN", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: middleware.GetRequestID(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// serviceErrors maps service sentinels to responses. Their messages are safe to show.
var serviceErrors = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrUserNotFound, fiber.StatusNotFound, "USER_NOT_FOUND"},
	{service.ErrProductNotFound, fiber.StatusNotFound, "PRODUCT_NOT_FOUND"},
	{service.ErrAvatarNotFound, fiber.StatusNotFound, "AVATAR_NOT_FOUND"},
	{service.ErrNoActiveSubscription, fiber.StatusNotFound, "NO_ACTIVE_SUBSCRIPTION"},
	{service.ErrEmailTaken, fiber.StatusConflict, "EMAIL_TAKEN"},
	{service.ErrAlreadySubscribed, fiber.StatusConflict, "ALREADY_SUBSCRIBED"},
	{service.ErrAlreadyReviewed, fiber.StatusConflict, "ALREADY_REVIEWED"},
	{service.ErrInvalidPassword, fiber.StatusBadRequest, "INVALID_PASSWORD"},
	{service.ErrInvalidPlan, fiber.StatusBadRequest, "INVALID_PLAN"},
	{service.ErrReaderNil, fiber.StatusBadRequest, "FILE_REQUIRED"},
}

// writeServiceError translates a service error. Unknown errors are logged and reported as 500.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", ve.Message)
	}
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return writeError(c, m.status, m.code, m.err.Error())
		}
	}

	slog.Default().ErrorContext(c.UserContext(), "request_failed",
		"request_id", middleware.GetRequestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"error_message", err.Error(),
	)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
