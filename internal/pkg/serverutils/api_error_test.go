package serverutils

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerMiddlewareApiError(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/fail", func(ctx *fiber.Ctx) error {
		return Forbidden("You do not own this note")
	})

	res, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"error":"You do not own this note"}`, string(body))
}

func TestErrorHandlerMiddlewareUnknownError(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/fail", func(ctx *fiber.Ctx) error {
		return errors.New("something broke")
	})

	res, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, `{"error":"something broke"}`, string(body))
}

func TestErrorHandlerMiddlewarePassthrough(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/ok", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"message": "API is running"})
	})

	res, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)
}

func TestValidateRequest(t *testing.T) {
	type payload struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	t.Run("valid", func(t *testing.T) {
		err := ValidateRequest(payload{Email: "a@b.com", Password: "123456"})
		assert.NoError(t, err)
	})

	t.Run("missing field", func(t *testing.T) {
		err := ValidateRequest(payload{Email: "a@b.com"})
		require.Error(t, err)

		var apiErr *ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, fiber.StatusBadRequest, apiErr.Code)
		assert.Contains(t, apiErr.Message, "Password")
	})

	t.Run("bad email", func(t *testing.T) {
		err := ValidateRequest(payload{Email: "not-an-email", Password: "123456"})
		require.Error(t, err)

		var apiErr *ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Contains(t, apiErr.Message, "Email")
	})
}
