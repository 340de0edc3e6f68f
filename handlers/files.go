package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// ServeUpload streams a stored media file back to the client. Names that
// resolve outside the store root get a 404 before any existence check.
func (api *API) ServeUpload(c *gin.Context) {
	api.Store.Serve(c.Param("filename"), c.Writer, c.Request)
}

func (api *API) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StaticFallback serves files of the frontend directory for any route the
// API does not own, existing regular files only.
func StaticFallback(frontendDir string) gin.HandlerFunc {
	root, err := filepath.Abs(frontendDir)
	if err != nil {
		root = frontendDir
	}
	return func(c *gin.Context) {
		name := c.Request.URL.Path
		if name == "/" {
			name = "/index.html"
		}
		full := filepath.Join(root, filepath.Clean(name))
		if !strings.HasPrefix(full, root+string(filepath.Separator)) {
			c.JSON(http.StatusNotFound, NotFoundResponse)
			return
		}
		file, err := os.Open(full)
		if err != nil {
			c.JSON(http.StatusNotFound, NotFoundResponse)
			return
		}
		defer file.Close()
		fi, err := file.Stat()
		if err != nil || fi.IsDir() {
			c.JSON(http.StatusNotFound, NotFoundResponse)
			return
		}
		// ServeContent rather than ServeFile: the latter redirects paths
		// ending in /index.html instead of serving them
		http.ServeContent(c.Writer, c.Request, fi.Name(), fi.ModTime(), file)
	}
}
