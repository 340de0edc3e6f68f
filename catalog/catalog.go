// Package catalog implements the logical record layer over albums, images
// and slides, keeping the rows consistent with the files held by the
// storage backend.
package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"shrine/storage"
)

// ErrValidation is returned when a required field is missing or a file type
// is not allowed.
var ErrValidation = errors.New("validation failed")

type Catalog struct {
	db    *gorm.DB
	store storage.StorageAPI
}

func New(db *gorm.DB, store storage.StorageAPI) *Catalog {
	return &Catalog{db: db, store: store}
}

func newID() string {
	return uuid.New().String()
}

func now() int64 {
	return time.Now().UnixNano()
}
