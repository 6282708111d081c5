// Package api contains the HTTP handlers, one file per area. Handlers bind
// the request, call at most one or two service operations and shape the JSON
// response; all domain logic lives in internal/service.
package api

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/finstagram/backend/internal/storage"
)

// fileURL resolves a stored filename into a retrieval URL. Backends that
// serve files themselves (S3) hand out their own URL; everything else goes
// through the API's file endpoint on the requesting host.
func fileURL(c *gin.Context, media storage.MediaStore, filename string) string {
	if filename == "" {
		return ""
	}
	if url, ok := media.URL(c.Request.Context(), filename); ok {
		return url
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/api/get_file/%s", scheme, c.Request.Host, filename)
}

// nullableURL is fileURL but with nil for absent references, so profile_pic
// and avatar serialize as JSON null rather than "".
func nullableURL(c *gin.Context, media storage.MediaStore, filename string) *string {
	if filename == "" {
		return nil
	}
	url := fileURL(c, media, filename)
	return &url
}
