package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cardtracker/internal/http/middleware"
	"cardtracker/internal/http/web"
	"cardtracker/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "INVALID_ID", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// writeServiceError translates service errors into the API envelope.
// Validation messages are user-facing; anything unexpected becomes INTERNAL_ERROR.
func writeServiceError(c *fiber.Ctx, err error) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(errorPayload{
			RequestID: middleware.RequestIDFrom(c),
			Error:     errorEnvelope{Code: "VALIDATION_ERROR", Message: ve.Message, Field: ve.Field},
		})
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "card not found")
	case errors.Is(err, service.ErrStorageDisabled):
		return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_DISABLED", "photo storage is not configured")
	case errors.Is(err, service.ErrNotImage):
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "photo must be an image")
	case errors.Is(err, service.ErrDuplicateCardID):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "could not allocate a card id, please retry")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// wantsHTML reports whether the error should be rendered as a page rather than JSON.
func wantsHTML(c *fiber.Ctx) bool {
	if strings.HasPrefix(c.Path(), "/api/") {
		return false
	}
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMETextHTML)
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
// Browsers get the error page; everything else gets the JSON envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		code, message := "INTERNAL_ERROR", "internal server error"
		switch status {
		case fiber.StatusBadRequest:
			code, message = "BAD_REQUEST", "bad request"
		case fiber.StatusNotFound:
			code, message = "NOT_FOUND", "resource not found"
		case fiber.StatusMethodNotAllowed:
			code, message = "METHOD_NOT_ALLOWED", "method not allowed"
		case fiber.StatusRequestEntityTooLarge:
			code, message = "PAYLOAD_TOO_LARGE", "request body too large"
		}

		if wantsHTML(c) {
			rerr := web.Render(c, "error", web.Layout, fiber.Map{
				"Title":     "Error",
				"Status":    status,
				"Message":   message,
				"RequestID": middleware.RequestIDFrom(c),
			}, status)
			if rerr == nil {
				return nil
			}
		}
		return writeError(c, status, code, message)
	}
}
