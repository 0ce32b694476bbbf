package controller

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduplicateFilenameNoCollision(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, "photo.png", DeduplicateFilename(dir, "photo.png"))
}

func TestDeduplicateFilenameCollision(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.png"), []byte("x"), 0o644))

	name := DeduplicateFilename(dir, "photo.png")
	assert.NotEqual(t, "photo.png", name)
	assert.True(t, strings.HasPrefix(name, "photo_"))
	assert.True(t, strings.HasSuffix(name, ".png"))
}

func TestDeduplicateFilenameKeepsExtensionless(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("x"), 0o644))

	name := DeduplicateFilename(dir, "README")
	assert.True(t, strings.HasPrefix(name, "README_"))
	assert.False(t, strings.Contains(name, "."))
}
