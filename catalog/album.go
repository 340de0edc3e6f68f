package catalog

import (
	"errors"
	"fmt"
	"log"

	"shrine/models"
	"shrine/storage"

	"gorm.io/gorm"
)

func (c *Catalog) CreateAlbum(name, description string) (*models.Album, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: album name is required", ErrValidation)
	}
	album := models.Album{
		ID:          newID(),
		CreatedAt:   now(),
		Name:        name,
		Description: description,
	}
	if err := c.db.Create(&album).Error; err != nil {
		return nil, err
	}
	return &album, nil
}

// Albums returns all albums, most recent first, each with its images also
// most recent first.
func (c *Catalog) Albums() ([]models.Album, error) {
	var albums []models.Album
	err := c.db.
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("created_at DESC").
		Find(&albums).Error
	if err != nil {
		return nil, err
	}
	return albums, nil
}

// AddImageData stores every valid data URI in the batch and records an image
// row for it under the given album. Bad items are skipped, not fatal; the
// returned slice holds the filenames that were actually saved. The album id
// is not checked against existing albums.
func (c *Catalog) AddImageData(albumID string, dataURIs []string) []string {
	saved := []string{}
	for _, uri := range dataURIs {
		data, ext, err := storage.ParseDataURI(uri)
		if err != nil {
			log.Printf("Skipping image for album %s: %v", albumID, err)
			continue
		}
		filename, err := c.saveImage(albumID, "upload", data, ext)
		if err != nil {
			log.Printf("Skipping image for album %s: %v", albumID, err)
			continue
		}
		saved = append(saved, filename)
	}
	return saved
}

// AddImageFile stores one uploaded file and records an image row for it.
func (c *Catalog) AddImageFile(albumID, originalName string, data []byte) (string, error) {
	ext := storage.ExtensionOf(originalName)
	if !storage.ValidExtension(ext) {
		return "", fmt.Errorf("%w: %q", storage.ErrUnsupportedType, ext)
	}
	return c.saveImage(albumID, originalName, data, ext)
}

// saveImage writes the bytes to storage first and only then inserts the row,
// so a row never references a file that was not written. A crash in between
// leaves an orphaned file, which is harmless.
func (c *Catalog) saveImage(albumID, originalName string, data []byte, ext string) (string, error) {
	filename := storage.NewFilename("album_"+albumID, ext)
	if err := c.store.Save(filename, data); err != nil {
		return "", err
	}
	image := models.Image{
		ID:           newID(),
		AlbumID:      &albumID,
		CreatedAt:    now(),
		Filename:     filename,
		OriginalName: originalName,
	}
	if err := c.db.Create(&image).Error; err != nil {
		return "", err
	}
	return filename, nil
}

// DeleteAlbum removes the album, its image rows and, best-effort, their
// files. Files go first, then image rows, then the album row: a crash
// mid-way leaves at most orphaned image rows, which a re-run cleans up.
func (c *Catalog) DeleteAlbum(albumID string) (bool, error) {
	var album models.Album
	err := c.db.First(&album, "id = ?", albumID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	var images []models.Image
	if err := c.db.Find(&images, "album_id = ?", albumID).Error; err != nil {
		return false, err
	}
	for _, image := range images {
		if res := c.store.Delete(image.Filename); res == storage.NotFound {
			log.Printf("File already gone: %s", image.Filename)
		}
	}
	if err := c.db.Delete(&models.Image{}, "album_id = ?", albumID).Error; err != nil {
		return false, err
	}
	if err := c.db.Delete(&models.Album{}, "id = ?", albumID).Error; err != nil {
		return false, err
	}
	return true, nil
}
