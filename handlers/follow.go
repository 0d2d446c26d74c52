package handlers

import (
	"net/http"

	"yatube/models"

	"github.com/gin-gonic/gin"
)

// FollowIndex is the viewer's personal feed: posts by every author
// they follow. No follows simply means an empty page.
func FollowIndex(c *gin.Context, user *models.User) {
	posts, page, err := models.Feed{Scope: models.FeedFollowing, ViewerID: user.ID}.Page(c.Query("page"))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "follow.tmpl", pageContext(c, gin.H{"Error": "DB error"}))
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", pageContext(c, gin.H{
		"Posts": posts,
		"Page":  page,
	}))
}

func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByName(c.Param("username"))
	if err != nil {
		render404(c)
		return
	}
	if err := models.FollowAuthor(user.ID, author.ID); err != nil {
		c.HTML(http.StatusInternalServerError, "profile.tmpl", pageContext(c, gin.H{"Error": "DB error"}))
		return
	}
	c.Redirect(http.StatusFound, profilePath(author.Name))
}

func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByName(c.Param("username"))
	if err != nil {
		render404(c)
		return
	}
	if err := models.UnfollowAuthor(user.ID, author.ID); err != nil {
		c.HTML(http.StatusInternalServerError, "profile.tmpl", pageContext(c, gin.H{"Error": "DB error"}))
		return
	}
	c.Redirect(http.StatusFound, profilePath(author.Name))
}
