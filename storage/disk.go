package storage

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

type DiskStorage struct {
	// BasePath is a directory writable by the current process
	BasePath string
}

func NewDiskStorage(basePath string) (*DiskStorage, error) {
	if err := os.MkdirAll(basePath, 0777); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, err
	}
	return &DiskStorage{BasePath: abs}, nil
}

// fullPath resolves name under the store root, rejecting anything that
// would escape it.
func (s *DiskStorage) fullPath(name string) (string, bool) {
	full := filepath.Join(s.BasePath, name)
	if full != s.BasePath && !strings.HasPrefix(full, s.BasePath+string(filepath.Separator)) {
		return "", false
	}
	return full, full != s.BasePath
}

func (s *DiskStorage) Save(name string, data []byte) error {
	full, ok := s.fullPath(name)
	if !ok {
		return fmt.Errorf("invalid name %q", name)
	}
	return os.WriteFile(full, data, 0666)
}

func (s *DiskStorage) Delete(name string) DeleteResult {
	full, ok := s.fullPath(name)
	if !ok {
		return NotFound
	}
	err := os.Remove(full)
	if err == nil {
		return Deleted
	}
	if os.IsNotExist(err) {
		return NotFound
	}
	log.Printf("Cannot delete %s: %v", name, err)
	return StorageError
}

func (s *DiskStorage) Exists(name string) bool {
	full, ok := s.fullPath(name)
	if !ok {
		return false
	}
	fi, err := os.Stat(full)
	return err == nil && !fi.IsDir()
}

func (s *DiskStorage) Serve(name string, w http.ResponseWriter, r *http.Request) {
	full, ok := s.fullPath(name)
	if !ok || !s.Exists(name) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, full)
}
