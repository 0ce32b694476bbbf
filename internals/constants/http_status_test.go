package constants

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestResolveStatusKnownKeys(t *testing.T) {
	assert.Equal(t, HTTPStatus{fiber.StatusOK, "OK"}, ResolveStatus(StatusOK))
	assert.Equal(t, HTTPStatus{fiber.StatusCreated, "Created"}, ResolveStatus(StatusCreated))
	assert.Equal(t, HTTPStatus{fiber.StatusConflict, "Conflict"}, ResolveStatus(StatusConflict))
	assert.Equal(t, HTTPStatus{fiber.StatusUnauthorized, "Unauthorized"}, ResolveStatus(StatusUnauthorized))
}

func TestResolveStatusUnknownKeyFallsBackTo500(t *testing.T) {
	st := ResolveStatus("NO_SUCH_KEY")
	assert.Equal(t, fiber.StatusInternalServerError, st.StatusCode)
	assert.Equal(t, "Internal Server Error", st.Message)

	st = ResolveStatus("")
	assert.Equal(t, fiber.StatusInternalServerError, st.StatusCode)
}
