package helper

import (
	"mime"
	"path/filepath"
	"strings"
)

// GetMimeType returns the MIME type for a file based on its extension
func GetMimeType(filename string) string {
	ext := filepath.Ext(filename)
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return "application/octet-stream" // Default for unknown file types
	}
	return mimeType
}

// IsCSV reports whether a filename looks like a CSV upload.
func IsCSV(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".csv")
}
