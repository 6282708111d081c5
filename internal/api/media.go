package api

import (
	"errors"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/finstagram/backend/internal/storage"
)

type MediaHandler struct {
	media storage.MediaStore
}

func NewMediaHandler(media storage.MediaStore) *MediaHandler {
	return &MediaHandler{media: media}
}

func (h *MediaHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/get_file/:filename", h.GetFile)
}

// GetFile streams the named file from the media store. There is no
// authorization: any stored name is servable, and traversal is blocked by
// the store's own name validation.
func (h *MediaHandler) GetFile(c *gin.Context) {
	filename := c.Param("filename")

	rc, err := h.media.Open(c.Request.Context(), filename)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "File not found"})
			return
		}
		log.Printf("file read failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}
