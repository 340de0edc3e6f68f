package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"shrine/models"
	"shrine/storage"
)

type SlideInfo struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Filename  *string `json:"filename"`
	Link      string  `json:"link"`
	CreatedAt int64   `json:"created_at"`
	Position  int     `json:"position"`
}

type SlideCreateRequest struct {
	Title string `json:"title" form:"title"`
	Link  string `json:"link" form:"link"`
}

func slideInfoFrom(slide *models.Slide) SlideInfo {
	info := SlideInfo{
		ID:        slide.ID,
		Title:     slide.Title,
		Link:      slide.Link,
		CreatedAt: slide.CreatedAt,
		Position:  slide.Position,
	}
	if slide.Filename != "" {
		info.Filename = &slide.Filename
	}
	return info
}

func (api *API) SlideList(c *gin.Context) {
	slides, err := api.Catalog.Slides()
	if err != nil {
		log.Printf("Error fetching slides: %v", err)
		c.JSON(http.StatusInternalServerError, InternalResponse)
		return
	}
	result := []SlideInfo{}
	for i := range slides {
		result = append(result, slideInfoFrom(&slides[i]))
	}
	c.JSON(http.StatusOK, result)
}

// SlideCreate accepts a JSON body, or a form (optionally multipart with a
// "file" field holding the slide image).
func (api *API) SlideCreate(c *gin.Context) {
	r := SlideCreateRequest{}
	var data []byte
	originalName := ""
	if strings.Contains(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&r); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		r.Title = c.PostForm("title")
		r.Link = c.PostForm("link")
		if header, err := c.FormFile("file"); err == nil {
			file, err := header.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			data, err = io.ReadAll(file)
			file.Close()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			originalName = header.Filename
		}
	}
	slide, err := api.Catalog.CreateSlide(r.Title, r.Link, originalName, data)
	if errors.Is(err, storage.ErrUnsupportedType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error creating slide: %v", err)
		c.JSON(http.StatusInternalServerError, InternalResponse)
		return
	}
	info := slideInfoFrom(slide)
	c.JSON(http.StatusCreated, gin.H{
		"id":       info.ID,
		"title":    info.Title,
		"filename": info.Filename,
		"link":     info.Link,
	})
}

func (api *API) SlideDelete(c *gin.Context) {
	deleted, err := api.Catalog.DeleteSlide(c.Param("id"))
	if err != nil {
		log.Printf("Error deleting slide: %v", err)
		c.JSON(http.StatusInternalServerError, InternalResponse)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, DeletedResponse)
}
