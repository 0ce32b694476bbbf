package constants

import (
	"path/filepath"
	"strings"
)

// File kinds attached to uploaded files.
const (
	FileKindAudio    = "AUDIO"
	FileKindDocument = "DOCUMENT"
	FileKindPDF      = "PDF"
	FileKindSlides   = "SLIDES"
	FileKindImage    = "IMAGE"
	FileKindSheet    = "SHEET"
	FileKindUnknown  = "UNKNOWN"
)

// DetectFileKind classifies a filename by its extension.
func DetectFileKind(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp3", ".wav":
		return FileKindAudio
	case ".doc", ".docx":
		return FileKindDocument
	case ".pdf":
		return FileKindPDF
	case ".ppt", ".pptx":
		return FileKindSlides
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileKindImage
	case ".xls", ".xlsx", ".csv":
		return FileKindSheet
	default:
		return FileKindUnknown
	}
}

// IsConvertibleImage reports whether the upload pipeline should produce a
// webp variant for this file.
func IsConvertibleImage(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}
