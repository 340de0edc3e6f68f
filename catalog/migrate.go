package catalog

import (
	"encoding/json"
	"log"
	"strings"

	"shrine/models"
	"shrine/storage"
)

// LegacyID accepts both string and numeric identifiers, since snapshots
// taken from browser localStorage hold ids generated by Date.now().
type LegacyID string

func (id *LegacyID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = LegacyID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = LegacyID(n.String())
	return nil
}

// LegacySnapshot is the localStorage dump a client held before this backend
// existed.
type LegacySnapshot struct {
	Gallery   []LegacyAlbum `json:"gallery"`
	Slideshow []LegacySlide `json:"slideshow"`
}

type LegacyAlbum struct {
	ID          LegacyID      `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Images      []LegacyImage `json:"images"`
}

type LegacyImage struct {
	ID   LegacyID `json:"id"`
	Name string   `json:"name"`
	Src  string   `json:"src"`
}

type LegacySlide struct {
	ID    LegacyID `json:"id"`
	Title string   `json:"title"`
	Link  string   `json:"link"`
	Src   string   `json:"src"`
}

// Migrate imports a legacy snapshot, preserving client-supplied identities.
// Rows are only ever inserted when their identity is absent, never
// overwritten, which makes the whole operation safe to re-run. The returned
// count is the number of images actually decoded and stored on this run.
func (c *Catalog) Migrate(snapshot LegacySnapshot) (int, error) {
	migrated := 0
	for _, a := range snapshot.Gallery {
		if a.ID == "" {
			// Without an identity there is nothing to upsert against; a
			// struct condition would silently match some other album
			log.Printf("Skipping legacy album %q: no id", a.Name)
			continue
		}
		album := models.Album{
			ID:          string(a.ID),
			CreatedAt:   now(),
			Name:        a.Name,
			Description: a.Description,
		}
		res := c.db.Where("id = ?", album.ID).Attrs(album).FirstOrCreate(&album)
		if res.Error != nil {
			return migrated, res.Error
		}
		for _, img := range a.Images {
			n, err := c.migrateImage(album.ID, img)
			if err != nil {
				return migrated, err
			}
			migrated += n
		}
	}
	for _, s := range snapshot.Slideshow {
		n, err := c.migrateSlide(s)
		if err != nil {
			return migrated, err
		}
		migrated += n
	}
	return migrated, nil
}

func (c *Catalog) migrateImage(albumID string, img LegacyImage) (int, error) {
	if !strings.HasPrefix(img.Src, "data:") {
		return 0, nil
	}
	var count int64
	if err := c.db.Model(&models.Image{}).Where("id = ?", string(img.ID)).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		// Already migrated on a previous run
		return 0, nil
	}
	data, ext, err := storage.ParseDataURI(img.Src)
	if err != nil {
		log.Printf("Skipping legacy image %s: %v", img.ID, err)
		return 0, nil
	}
	filename := storage.NewFilename("migrated_gallery_"+albumID, ext)
	if err := c.store.Save(filename, data); err != nil {
		log.Printf("Skipping legacy image %s: %v", img.ID, err)
		return 0, nil
	}
	image := models.Image{
		ID:           string(img.ID),
		AlbumID:      &albumID,
		CreatedAt:    now(),
		Filename:     filename,
		OriginalName: img.Name,
	}
	if err := c.db.Create(&image).Error; err != nil {
		return 0, err
	}
	return 1, nil
}

func (c *Catalog) migrateSlide(s LegacySlide) (int, error) {
	var count int64
	if err := c.db.Model(&models.Slide{}).Where("id = ?", string(s.ID)).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	migrated := 0
	filename := ""
	if strings.HasPrefix(s.Src, "data:") {
		data, ext, err := storage.ParseDataURI(s.Src)
		if err != nil {
			log.Printf("Skipping legacy slide image %s: %v", s.ID, err)
		} else {
			filename = storage.NewFilename("migrated_slide", ext)
			if err := c.store.Save(filename, data); err != nil {
				log.Printf("Skipping legacy slide image %s: %v", s.ID, err)
				filename = ""
			} else {
				migrated = 1
			}
		}
	}
	slide := models.Slide{
		ID:        string(s.ID),
		CreatedAt: now(),
		Title:     s.Title,
		Filename:  filename,
		Link:      s.Link,
	}
	if err := c.db.Create(&slide).Error; err != nil {
		return migrated, err
	}
	return migrated, nil
}
