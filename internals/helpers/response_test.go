package helper

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suas_backend/internals/constants"
)

func perform(t *testing.T, handler fiber.Handler) (int, Envelope, []byte) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env Envelope
	if len(body) > 0 {
		require.NoError(t, sonic.Unmarshal(body, &env))
	}
	return resp.StatusCode, env, body
}

func TestSuccessDefaults(t *testing.T) {
	code, env, _ := perform(t, func(c *fiber.Ctx) error {
		return Success(c, fiber.Map{"id": "42"})
	})

	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Success)
	assert.Equal(t, fiber.StatusOK, env.Status)
	assert.Equal(t, "OK", env.Message)
	assert.Equal(t, map[string]interface{}{"id": "42"}, env.Result)
}

func TestSuccessCreatedWithMessage(t *testing.T) {
	code, env, _ := perform(t, func(c *fiber.Ctx) error {
		return Success(c, nil, constants.StatusCreated, "Catégorie créée")
	})

	assert.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, fiber.StatusCreated, env.Status)
	assert.Equal(t, "Catégorie créée", env.Message)
	assert.Nil(t, env.Result)
}

func TestSuccessOmitsEmptyResult(t *testing.T) {
	_, _, body := perform(t, func(c *fiber.Ctx) error {
		return Success(c, nil)
	})
	assert.NotContains(t, string(body), "result")
}

func TestErrorEnvelope(t *testing.T) {
	code, env, _ := perform(t, func(c *fiber.Ctx) error {
		return Error(c, "Événement non trouvé", constants.StatusNotFound)
	})

	assert.Equal(t, fiber.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, fiber.StatusNotFound, env.Status)
	assert.Equal(t, "Événement non trouvé", env.Message)
}

func TestErrorFallsBackToStatusText(t *testing.T) {
	code, env, _ := perform(t, func(c *fiber.Ctx) error {
		return Error(c, "  ", constants.StatusConflict)
	})

	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, "Conflict", env.Message)

	// empty key means a handler bug, surfaced as a 500
	code, env, _ = perform(t, func(c *fiber.Ctx) error {
		return Error(c, "boom", "")
	})
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, "boom", env.Message)
}

func TestValidationErrorJoinsViolations(t *testing.T) {
	type payload struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}
	vErr := validator.New().Struct(payload{Email: "pas-un-email"})
	require.Error(t, vErr)

	code, env, _ := perform(t, func(c *fiber.Ctx) error {
		return ValidationError(c, vErr)
	})

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, env.Message, "Le champ Name est obligatoire")
	assert.Contains(t, env.Message, "Le champ Email doit être un email valide")
	assert.Contains(t, env.Message, ", ")
}

func TestNoContent(t *testing.T) {
	code, _, body := perform(t, NoContent)
	assert.Equal(t, fiber.StatusNoContent, code)
	assert.Empty(t, body)
}
