package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthSuffix(t *testing.T) {
	assert.Equal(t, "/03/2026", monthSuffix(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "/12/2025", monthSuffix(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
}

func TestFormatReference(t *testing.T) {
	// first reference of the month
	assert.Equal(t, "10001/03/2026", formatReference(0, "/03/2026"))
	// counter advances with each existing row of the same month
	assert.Equal(t, "10002/03/2026", formatReference(1, "/03/2026"))
	assert.Equal(t, "10143/03/2026", formatReference(142, "/03/2026"))
}
