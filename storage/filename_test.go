package storage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestValidExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want bool
	}{
		{"png", true},
		{"jpg", true},
		{"jpeg", true},
		{"gif", true},
		{"webp", true},
		{"JPG", true},
		{"PnG", true},
		{"exe", false},
		{"svg", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := ValidExtension(tt.ext); got != tt.want {
				t.Errorf("ValidExtension(%q) = %v, want %v", tt.ext, got, tt.want)
			}
		})
	}
}

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"photo.JPG", "jpg"},
		{"archive.tar.gz", "gz"},
		{"noext", ""},
		{"trailing.", ""},
	}
	for _, tt := range tests {
		if got := ExtensionOf(tt.name); got != tt.want {
			t.Errorf("ExtensionOf(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNewFilenameUnique(t *testing.T) {
	a := NewFilename("album_1", "png")
	b := NewFilename("album_1", "png")
	if a == b {
		t.Errorf("expected unique filenames, got %q twice", a)
	}
	if !strings.HasPrefix(a, "album_1_") || !strings.HasSuffix(a, ".png") {
		t.Errorf("unexpected filename format: %q", a)
	}
}

func TestParseDataURI(t *testing.T) {
	payload := []byte("not really an image")
	encoded := base64.StdEncoding.EncodeToString(payload)
	tests := []struct {
		name    string
		uri     string
		wantExt string
		wantErr bool
	}{
		{"png", "data:image/png;base64," + encoded, "png", false},
		{"jpeg", "data:image/jpeg;base64," + encoded, "jpg", false},
		{"gif", "data:image/gif;base64," + encoded, "gif", false},
		{"webp", "data:image/webp;base64," + encoded, "webp", false},
		{"unknown type defaults to png", "data:image/tiff;base64," + encoded, "png", false},
		{"bad base64", "data:image/png;base64,!!!not-base64!!!", "", true},
		{"no comma", "data:image/png;base64", "", true},
		{"not a data uri", "http://example.com/image.png", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, ext, err := ParseDataURI(tt.uri)
			if tt.wantErr {
				if !errors.Is(err, ErrDecode) {
					t.Fatalf("expected ErrDecode, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ext != tt.wantExt {
				t.Errorf("ext = %q, want %q", ext, tt.wantExt)
			}
			if !bytes.Equal(data, payload) {
				t.Errorf("decoded bytes do not match the input")
			}
		})
	}
}
