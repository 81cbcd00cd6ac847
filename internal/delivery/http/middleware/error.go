package middleware

import (
	"errors"
	"log"

	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

func NewFieldError(statusCode int, fields map[string]string) *AppError {
	return &AppError{StatusCode: statusCode, Fields: fields}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware converts handler errors into the API's error bodies: a
// field-to-message map for validation failures, {"error": msg} otherwise.
// Fault messages are passed through even on 500s; this API reports the
// upstream failure text to the caller.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			status := appErr.StatusCode
			if status <= 0 {
				status = fiber.StatusInternalServerError
			}
			if status >= 500 {
				m.logger.Printf("request failed: %v", err)
			}
			if len(appErr.Fields) > 0 {
				return response.FieldErrors(c, status, appErr.Fields)
			}
			return response.Error(c, status, appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status := fiberErr.Code
			if status <= 0 {
				status = fiber.StatusInternalServerError
			}
			return response.Error(c, status, fiberErr.Message)
		}

		m.logger.Printf("unhandled error: %v", err)
		return response.Error(c, fiber.StatusInternalServerError, err.Error())
	}
}
