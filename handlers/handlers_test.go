package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shrine/catalog"
	"shrine/db"
	"shrine/models"
	"shrine/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storage.DiskStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database, err := db.Open("", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	if err := models.Init(database); err != nil {
		t.Fatalf("models.Init: %v", err)
	}
	store, err := storage.NewDiskStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStorage: %v", err)
	}
	api := &API{Catalog: catalog.New(database, store), Store: store}

	router := gin.New()
	router.GET("/api/gallery/albums", api.AlbumList)
	router.POST("/api/gallery/albums", api.AlbumCreate)
	router.POST("/api/gallery/albums/:id/images", api.AlbumAddImages)
	router.DELETE("/api/gallery/albums/:id", api.AlbumDelete)
	router.GET("/api/slideshow/slides", api.SlideList)
	router.POST("/api/slideshow/slides", api.SlideCreate)
	router.DELETE("/api/slideshow/slides/:id", api.SlideDelete)
	router.POST("/api/migrate-from-localstorage", api.Migrate)
	router.GET("/api/status", api.Status)
	router.GET("/uploads/:filename", api.ServeUpload)
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestStatus(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestAlbumCreateAndList(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/gallery/albums", `{"name":"Feast Day 2024"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.ID == "" || created.Name != "Feast Day 2024" || created.Description != "" {
		t.Errorf("unexpected create response: %+v", created)
	}

	// Missing name is a validation failure
	w = doJSON(t, router, http.MethodPost, "/api/gallery/albums", `{"description":"nameless"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("create without name: status = %d, want 400", w.Code)
	}

	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png payload"))
	w = doJSON(t, router, http.MethodPost, "/api/gallery/albums/"+created.ID+"/images", `{"images":["`+uri+`"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("add images status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var savedResp struct {
		Saved []string `json:"saved"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &savedResp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(savedResp.Saved) != 1 || !strings.HasSuffix(savedResp.Saved[0], ".png") {
		t.Fatalf("saved = %v, want one .png filename", savedResp.Saved)
	}

	w = doJSON(t, router, http.MethodGet, "/api/gallery/albums", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", w.Code)
	}
	var albums []AlbumInfo
	if err := json.Unmarshal(w.Body.Bytes(), &albums); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(albums) != 1 || len(albums[0].Images) != 1 || albums[0].Images[0].Filename != savedResp.Saved[0] {
		t.Errorf("albums = %+v, want one album holding %q", albums, savedResp.Saved[0])
	}

	// The stored file is served back
	req := httptest.NewRequest(http.MethodGet, "/uploads/"+savedResp.Saved[0], nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("fetch upload: status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "png payload" {
		t.Errorf("served bytes differ from uploaded bytes")
	}
}

func TestAlbumAddImagesMultipart(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/gallery/albums", `{"name":"Uploads"}`)
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)
	part, err := form.CreateFormFile("photo1", "feast.jpeg")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write([]byte("jpeg bytes"))
	part, err = form.CreateFormFile("photo2", "notes.exe")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	_, _ = part.Write([]byte("MZ"))
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/gallery/albums/"+created.ID+"/images", body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var savedResp struct {
		Saved []string `json:"saved"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &savedResp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(savedResp.Saved) != 1 || !strings.HasSuffix(savedResp.Saved[0], ".jpeg") {
		t.Errorf("saved = %v, want only the jpeg upload (exe rejected)", savedResp.Saved)
	}
}

func TestSlideLifecycleOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	// Form post without a file
	form := strings.NewReader("title=Welcome&link=")
	req := httptest.NewRequest(http.MethodPost, "/api/slideshow/slides", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create slide status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ID       string  `json:"id"`
		Title    string  `json:"title"`
		Filename *string `json:"filename"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.Title != "Welcome" || created.Filename != nil {
		t.Errorf("unexpected slide response: %+v", created)
	}

	w := doJSON(t, router, http.MethodDelete, "/api/slideshow/slides/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want 200", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/slideshow/slides/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestDeleteAlbumNotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	w := doJSON(t, router, http.MethodDelete, "/api/gallery/albums/no-such-id", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
