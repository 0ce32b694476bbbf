package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	app := fiber.New()
	var token string
	var tokenErr error
	app.Get("/", func(c *fiber.Ctx) error {
		token, tokenErr = ExtractBearerToken(c)
		return c.SendStatus(fiber.StatusOK)
	})

	run := func(header string) {
		req := httptest.NewRequest("GET", "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	run("Bearer abc.def.ghi")
	require.NoError(t, tokenErr)
	assert.Equal(t, "abc.def.ghi", token)

	// scheme match is case-insensitive
	run("bearer abc.def.ghi")
	require.NoError(t, tokenErr)
	assert.Equal(t, "abc.def.ghi", token)

	run("")
	assert.Error(t, tokenErr)

	run("Basic dXNlcjpwYXNz")
	assert.Error(t, tokenErr)

	run("Bearer")
	assert.Error(t, tokenErr)
}

func TestGetUserIDFromContext(t *testing.T) {
	app := fiber.New()
	want := uuid.New()

	var got uuid.UUID
	var gotErr error
	app.Get("/set", func(c *fiber.Ctx) error {
		c.Locals("user_id", want.String())
		got, gotErr = GetUserIDFromContext(c)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/unset", func(c *fiber.Ctx) error {
		got, gotErr = GetUserIDFromContext(c)
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		c.Locals("user_id", "not-a-uuid")
		got, gotErr = GetUserIDFromContext(c)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/set", nil))
	require.NoError(t, err)
	require.NoError(t, gotErr)
	assert.Equal(t, want, got)

	_, err = app.Test(httptest.NewRequest("GET", "/unset", nil))
	require.NoError(t, err)
	assert.Error(t, gotErr)

	_, err = app.Test(httptest.NewRequest("GET", "/bad", nil))
	require.NoError(t, err)
	assert.Error(t, gotErr)
}
