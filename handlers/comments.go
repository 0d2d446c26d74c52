package handlers

import (
	"net/http"
	"strings"

	"yatube/auth"
	"yatube/db"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

// AddComment attaches a comment to an existing post. The response is a
// redirect to the detail page no matter what: anonymous visitors and
// empty submissions are dropped without a word, that is the contract.
func AddComment(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		render404(c)
		return
	}
	post, err := models.PostByID(id)
	if err != nil {
		render404(c)
		return
	}
	user := auth.LoadSession(c).User()
	text := strings.TrimSpace(c.PostForm("text"))
	if user.ID != 0 && text != "" {
		comment := models.Comment{
			UserID: user.ID,
			PostID: post.ID,
			Text:   text,
		}
		_ = db.Instance.Create(&comment).Error
	}
	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}
