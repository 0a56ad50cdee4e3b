package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is a business-rule failure carrying the HTTP status it maps to.
// Services return these; the error handler middleware renders them.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

// Conflict covers duplicate registration and the last-notebook guard.
// It renders as 400 to match the original API contract.
func Conflict(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func BadRequest(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}
