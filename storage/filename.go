package storage

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

// ValidExtension reports whether ext (no leading dot) is an allowed image type.
func ValidExtension(ext string) bool {
	return allowedExtensions[strings.ToLower(ext)]
}

// ExtensionOf extracts the extension from a client-supplied file name, or ""
// when there is none.
func ExtensionOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// NewFilename generates a store key from a semantic prefix, a random token
// and the extension. The token makes collisions across the store negligible.
func NewFilename(prefix, ext string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%s.%s", prefix, token, strings.ToLower(ext))
}

// ParseDataURI decodes a "data:<mime>;base64,<payload>" string and returns
// the raw bytes together with the extension inferred from the declared MIME
// type (png when nothing matches).
func ParseDataURI(dataURI string) ([]byte, string, error) {
	header, encoded, found := strings.Cut(dataURI, ",")
	if !found || !strings.HasPrefix(dataURI, "data:") {
		return nil, "", ErrDecode
	}
	ext := "png"
	if strings.Contains(header, "jpeg") || strings.Contains(header, "jpg") {
		ext = "jpg"
	} else if strings.Contains(header, "gif") {
		ext = "gif"
	} else if strings.Contains(header, "webp") {
		ext = "webp"
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return data, ext, nil
}
