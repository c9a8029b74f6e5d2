package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ApiError carries an HTTP status alongside the message that goes into the
// {"error": ...} body. Handlers can return it directly and let the
// middleware below do the shaping.
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code int, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}

func BadRequest(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *ApiError {
	return NewApiError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *ApiError {
	return NewApiError(fiber.StatusForbidden, message)
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// {"error": message} body the clients expect. Unknown errors become 500 with
// the provider's message passed through unchanged.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.Code).JSON(fiber.Map{"error": apiErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

var validate = validator.New()

// ValidateRequest runs struct tag validation and maps the first failure to a
// 400 ApiError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return BadRequest("invalid request payload")
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return BadRequest("Missing or invalid field: " + fieldErrs[0].Field())
	}

	return BadRequest(err.Error())
}
