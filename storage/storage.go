package storage

import (
	"errors"
	"net/http"

	"shrine/config"
)

var (
	// ErrUnsupportedType is returned for file extensions outside the allow-list
	ErrUnsupportedType = errors.New("unsupported media type")
	// ErrDecode is returned for malformed base64 data URIs
	ErrDecode = errors.New("cannot decode image data")
)

// DeleteResult makes the outcome of a best-effort delete visible to callers
// instead of burying it in a swallowed error.
type DeleteResult uint8

const (
	Deleted DeleteResult = iota
	NotFound
	StorageError // already logged by the implementation
)

type StorageAPI interface {
	// Save writes the whole buffer under the given name, all-or-nothing.
	Save(name string, data []byte) error
	// Delete removes the file if present. Idempotent, never fatal.
	Delete(name string) DeleteResult
	Exists(name string) bool
	// Serve writes the file to the response, or a 404 when the name is
	// missing or resolves outside the store root.
	Serve(name string, w http.ResponseWriter, r *http.Request)
}

// New picks the storage backend from the configuration: S3 when a bucket
// is set, the local upload directory otherwise.
func New() (StorageAPI, error) {
	if config.S3_BUCKET != "" {
		return NewS3Storage(config.S3_BUCKET, config.S3_REGION, config.S3_ENDPOINT, config.S3_AUTH)
	}
	return NewDiskStorage(config.UPLOAD_DIR)
}
