package main

import (
	"log"
	"strings"
	"time"

	"shrine/catalog"
	"shrine/config"
	"shrine/db"
	"shrine/handlers"
	"shrine/models"
	"shrine/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

func main() {
	database, err := db.Open(config.MYSQL_DSN, config.SQLITE_FILE)
	if err != nil {
		log.Fatalf("Cannot open database: %v", err)
	}
	if err = models.Init(database); err != nil {
		log.Fatalf("Cannot migrate database: %v", err)
	}
	store, err := storage.New()
	if err != nil {
		log.Fatalf("Cannot initialize storage: %v", err)
	}
	api := &handlers.API{
		Catalog: catalog.New(database, store),
		Store:   store,
	}

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	// No credentialed requests here: there is no auth, and the cors
	// middleware ignores AllowCredentials with a wildcard origin anyway
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "PUT", "POST", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/uploads"})))
	}

	// Gallery
	router.GET("/api/gallery/albums", api.AlbumList)
	router.POST("/api/gallery/albums", api.AlbumCreate)
	router.POST("/api/gallery/albums/:id/images", api.AlbumAddImages)
	router.DELETE("/api/gallery/albums/:id", api.AlbumDelete)
	// Slideshow
	router.GET("/api/slideshow/slides", api.SlideList)
	router.POST("/api/slideshow/slides", api.SlideCreate)
	router.DELETE("/api/slideshow/slides/:id", api.SlideDelete)
	// Misc
	router.POST("/api/migrate-from-localstorage", api.Migrate)
	router.GET("/api/status", api.Status)
	// Stored media
	router.GET("/uploads/:filename", api.ServeUpload)
	// Static frontend for everything else
	router.NoRoute(handlers.StaticFallback(config.FRONTEND_DIR))

	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
