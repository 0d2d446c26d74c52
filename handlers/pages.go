package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func AboutAuthor(c *gin.Context) {
	c.HTML(http.StatusOK, "about_author.tmpl", pageContext(c, nil))
}

func AboutTech(c *gin.Context) {
	c.HTML(http.StatusOK, "about_tech.tmpl", pageContext(c, nil))
}

// NotFound is also wired as the router's NoRoute handler.
func NotFound(c *gin.Context) {
	render404(c)
}
