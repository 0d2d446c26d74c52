package handlers

import (
	"net/http"
	"strconv"

	"yatube/auth"

	"github.com/gin-gonic/gin"
)

// pageContext merges the handler's template data with what every page
// needs (the current viewer, for the nav bar).
func pageContext(c *gin.Context, extra gin.H) gin.H {
	ctx := gin.H{
		"Viewer": auth.LoadSession(c).User(),
	}
	for k, v := range extra {
		ctx[k] = v
	}
	return ctx
}

func render404(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", pageContext(c, gin.H{
		"Path": c.Request.URL.Path,
	}))
	c.Abort()
}

func paramID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func postDetailPath(postID uint64) string {
	return "/posts/" + strconv.FormatUint(postID, 10) + "/"
}

func profilePath(username string) string {
	return "/profile/" + username + "/"
}
