package handlers

import (
	"strings"

	"yatube/storage"

	"github.com/gin-gonic/gin"
)

// MediaFetch serves uploaded post images and thumbnails.
func MediaFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")
	if path == "" || strings.Contains(path, "..") {
		render404(c)
		return
	}
	storage.Get().Serve(path, c.Request, c.Writer)
}
