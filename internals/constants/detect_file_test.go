package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFileKind(t *testing.T) {
	cases := map[string]string{
		"intro.mp3":          FileKindAudio,
		"notes.WAV":          FileKindAudio,
		"programme.docx":     FileKindDocument,
		"badge.pdf":          FileKindPDF,
		"keynote.pptx":       FileKindSlides,
		"logo.png":           FileKindImage,
		"photo.JPEG":         FileKindImage,
		"photo.webp":         FileKindImage,
		"export.xlsx":        FileKindSheet,
		"participants.csv":   FileKindSheet,
		"archive.zip":        FileKindUnknown,
		"sans-extension":     FileKindUnknown,
		"dossier.pdf.backup": FileKindUnknown,
	}
	for name, want := range cases {
		assert.Equal(t, want, DetectFileKind(name), name)
	}
}

func TestIsConvertibleImage(t *testing.T) {
	assert.True(t, IsConvertibleImage("photo.png"))
	assert.True(t, IsConvertibleImage("photo.JPG"))
	assert.True(t, IsConvertibleImage("photo.jpeg"))
	// already webp, nothing to convert
	assert.False(t, IsConvertibleImage("photo.webp"))
	assert.False(t, IsConvertibleImage("badge.pdf"))
}
