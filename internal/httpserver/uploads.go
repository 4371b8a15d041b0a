package httpserver

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cema-admin/internal/blob"
)

// registerUploadRoutes serves stored images back. Only the fs and memory
// drivers route through here; with s3 the items carry bucket URLs and the
// dashboard never proxies the bytes.
func registerUploadRoutes(router *gin.Engine, deps Deps) {
	router.GET("/uploads/*path", func(c *gin.Context) {
		key := strings.TrimPrefix(c.Param("path"), "/")
		info, rc, err := deps.Blobs.Open(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, blob.ErrNotExist) {
				c.Status(http.StatusNotFound)
				return
			}
			c.Status(http.StatusBadRequest)
			return
		}
		defer rc.Close()

		contentType := info.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Type", contentType)
		if info.ETag != "" {
			c.Header("ETag", `"`+info.ETag+`"`)
		}
		c.Status(http.StatusOK)
		_, _ = io.Copy(c.Writer, rc)
	})
}
