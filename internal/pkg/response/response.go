package response

import "github.com/gofiber/fiber/v3"

const (
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageInternalServerError = "internal server error"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes the payload as-is. Handlers return the exact body shapes the
// API contract names, not a wrapper envelope.
func JSON(c fiber.Ctx, status int, body any) error {
	return c.Status(normalizeStatus(status)).JSON(body)
}

// Error writes {"error": message}.
func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = defaultMessageForStatus(st)
	}
	return c.Status(st).JSON(errorBody{Error: message})
}

// Message writes {"message": message}.
func Message(c fiber.Ctx, status int, message string) error {
	return c.Status(normalizeStatus(status)).JSON(messageBody{Message: message})
}

// FieldErrors writes a field-to-message map, the registration validation shape.
func FieldErrors(c fiber.Ctx, status int, fields map[string]string) error {
	return c.Status(normalizeStatus(status)).JSON(fields)
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	default:
		return MessageInternalServerError
	}
}
