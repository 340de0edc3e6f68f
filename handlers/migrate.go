package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shrine/catalog"
)

// Migrate imports a legacy localStorage snapshot. Safe to call repeatedly:
// already-present rows are left alone and not counted again.
func (api *API) Migrate(c *gin.Context) {
	snapshot := catalog.LegacySnapshot{}
	if err := c.ShouldBindJSON(&snapshot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	migrated, err := api.Catalog.Migrate(snapshot)
	if err != nil {
		log.Printf("Migration error: %v", err)
		c.JSON(http.StatusInternalServerError, InternalResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{"migrated": migrated})
}
