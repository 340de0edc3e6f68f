package handlers

import (
	"shrine/catalog"
	"shrine/storage"
)

// API groups the HTTP handlers around the injected catalog and storage.
type API struct {
	Catalog *catalog.Catalog
	Store   storage.StorageAPI
}

var (
	NotFoundResponse = map[string]string{"error": "Not found"}
	InternalResponse = map[string]string{"error": "Internal server error"}
	DeletedResponse  = map[string]bool{"deleted": true}
)
