package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shrine/catalog"
	"shrine/models"
)

type ImageInfo struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	CreatedAt    int64  `json:"created_at"`
}

type AlbumInfo struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   int64       `json:"created_at"`
	Images      []ImageInfo `json:"images"`
}

type AlbumCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type AlbumImagesRequest struct {
	Images []string `json:"images"`
}

func albumInfoFrom(album *models.Album) AlbumInfo {
	info := AlbumInfo{
		ID:          album.ID,
		Name:        album.Name,
		Description: album.Description,
		CreatedAt:   album.CreatedAt,
		Images:      []ImageInfo{},
	}
	for _, image := range album.Images {
		info.Images = append(info.Images, ImageInfo{
			ID:           image.ID,
			Filename:     image.Filename,
			OriginalName: image.OriginalName,
			CreatedAt:    image.CreatedAt,
		})
	}
	return info
}

func (api *API) AlbumList(c *gin.Context) {
	albums, err := api.Catalog.Albums()
	if err != nil {
		log.Printf("Error fetching albums: %v", err)
		c.JSON(http.StatusInternalServerError, InternalResponse)
		return
	}
	result := []AlbumInfo{}
	for i := range albums {
		result = append(result, albumInfoFrom(&albums[i]))
	}
	c.JSON(http.StatusOK, result)
}

func (api *API) AlbumCreate(c *gin.Context) {
	r := AlbumCreateRequest{}
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	album, err := api.Catalog.CreateAlbum(r.Name, r.Description)
	if errors.Is(err, catalog.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error creating album: %v", err)
		c.JSON(http.StatusInternalServerError, InternalResponse)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":          album.ID,
		"name":        album.Name,
		"description": album.Description,
	})
}

// AlbumAddImages accepts either a JSON body with base64 data URIs or a
// multipart form with one or more files, and reports the filenames that
// were actually saved. Bad items in a batch are skipped.
func (api *API) AlbumAddImages(c *gin.Context) {
	albumID := c.Param("id")
	if strings.Contains(c.ContentType(), "application/json") {
		r := AlbumImagesRequest{}
		if err := c.ShouldBindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		saved := api.Catalog.AddImageData(albumID, r.Images)
		c.JSON(http.StatusCreated, gin.H{"saved": saved})
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	saved := []string{}
	for _, headers := range form.File {
		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				log.Printf("Skipping upload %s: %v", header.Filename, err)
				continue
			}
			data, err := io.ReadAll(file)
			file.Close()
			if err != nil {
				log.Printf("Skipping upload %s: %v", header.Filename, err)
				continue
			}
			filename, err := api.Catalog.AddImageFile(albumID, header.Filename, data)
			if err != nil {
				log.Printf("Skipping upload %s: %v", header.Filename, err)
				continue
			}
			saved = append(saved, filename)
		}
	}
	c.JSON(http.StatusCreated, gin.H{"saved": saved})
}

func (api *API) AlbumDelete(c *gin.Context) {
	deleted, err := api.Catalog.DeleteAlbum(c.Param("id"))
	if err != nil {
		log.Printf("Error deleting album: %v", err)
		c.JSON(http.StatusInternalServerError, InternalResponse)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, DeletedResponse)
}
