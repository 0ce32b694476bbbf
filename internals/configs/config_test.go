package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("SUAS_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("SUAS_TEST_KEY"))
	assert.Equal(t, "value", GetEnv("SUAS_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", GetEnv("SUAS_TEST_MISSING", "fallback"))
	assert.Equal(t, "", GetEnv("SUAS_TEST_MISSING"))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("SUAS_TEST_PROXIES", "10.0.0.1, 10.0.0.2 ,")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, GetEnvList("SUAS_TEST_PROXIES", "127.0.0.1"))

	assert.Equal(t, []string{"127.0.0.1", "::1"}, GetEnvList("SUAS_TEST_PROXIES_MISSING", "127.0.0.1", "::1"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SUAS_TEST_PORT", "2525")
	assert.Equal(t, 2525, GetEnvInt("SUAS_TEST_PORT", 587))

	assert.Equal(t, 587, GetEnvInt("SUAS_TEST_PORT_MISSING", 587))

	t.Setenv("SUAS_TEST_PORT_BAD", "abc")
	assert.Equal(t, 587, GetEnvInt("SUAS_TEST_PORT_BAD", 587))
}
