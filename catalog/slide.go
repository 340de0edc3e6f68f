package catalog

import (
	"errors"
	"fmt"
	"log"

	"shrine/models"
	"shrine/storage"

	"gorm.io/gorm"
)

// CreateSlide records a slideshow slide with an optional image. When data is
// nil the slide has no file at all.
func (c *Catalog) CreateSlide(title, link, originalName string, data []byte) (*models.Slide, error) {
	filename := ""
	if data != nil {
		ext := storage.ExtensionOf(originalName)
		if !storage.ValidExtension(ext) {
			return nil, fmt.Errorf("%w: %q", storage.ErrUnsupportedType, ext)
		}
		filename = storage.NewFilename("slide", ext)
		if err := c.store.Save(filename, data); err != nil {
			return nil, err
		}
	}
	slide := models.Slide{
		ID:        newID(),
		CreatedAt: now(),
		Title:     title,
		Filename:  filename,
		Link:      link,
	}
	if err := c.db.Create(&slide).Error; err != nil {
		return nil, err
	}
	return &slide, nil
}

// Slides returns all slides: explicitly positioned ones first, the rest
// most recent first.
func (c *Catalog) Slides() ([]models.Slide, error) {
	var slides []models.Slide
	err := c.db.Order("position ASC, created_at DESC").Find(&slides).Error
	if err != nil {
		return nil, err
	}
	return slides, nil
}

// DeleteSlide removes the slide row after a best-effort delete of its file.
func (c *Catalog) DeleteSlide(slideID string) (bool, error) {
	var slide models.Slide
	err := c.db.First(&slide, "id = ?", slideID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if slide.Filename != "" {
		if res := c.store.Delete(slide.Filename); res == storage.NotFound {
			log.Printf("File already gone: %s", slide.Filename)
		}
	}
	if err := c.db.Delete(&models.Slide{}, "id = ?", slideID).Error; err != nil {
		return false, err
	}
	return true, nil
}
