package handlers

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"yatube/auth"
	"yatube/db"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

const thumbSize = 400

type PostForm struct {
	Text  string `form:"text" binding:"required"`
	Group string `form:"group"`
}

// Index is the global feed. The route is wrapped in the page cache, so
// within the TTL repeated requests serve the same rendered bytes.
func Index(c *gin.Context) {
	posts, page, err := models.Feed{Scope: models.FeedGlobal}.Page(c.Query("page"))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.tmpl", pageContext(c, gin.H{"Error": "DB error"}))
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", pageContext(c, gin.H{
		"Posts": posts,
		"Page":  page,
	}))
}

// GroupPosts lists the posts of one group, looked up by slug.
func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		render404(c)
		return
	}
	posts, page, err := models.Feed{Scope: models.FeedGroup, GroupID: group.ID}.Page(c.Query("page"))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "group_list.tmpl", pageContext(c, gin.H{"Error": "DB error"}))
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", pageContext(c, gin.H{
		"Group": group,
		"Posts": posts,
		"Page":  page,
	}))
}

// Profile shows an author's posts plus whether the viewer follows them.
func Profile(c *gin.Context) {
	author, err := models.UserByName(c.Param("username"))
	if err != nil {
		render404(c)
		return
	}
	posts, page, err := models.Feed{Scope: models.FeedAuthor, AuthorID: author.ID}.Page(c.Query("page"))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "profile.tmpl", pageContext(c, gin.H{"Error": "DB error"}))
		return
	}
	viewer := auth.LoadSession(c).User()
	c.HTML(http.StatusOK, "profile.tmpl", pageContext(c, gin.H{
		"Author":    author,
		"Posts":     posts,
		"Page":      page,
		"Following": models.IsFollowing(viewer.ID, author.ID),
	}))
}

// PostDetail shows one post with its comments and the comment form.
func PostDetail(c *gin.Context) {
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
	comments, err := models.PostComments(post.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "post_detail.tmpl", pageContext(c, gin.H{"Error": "DB error"}))
		return
	}
	c.HTML(http.StatusOK, "post_detail.tmpl", pageContext(c, gin.H{
		"Post":     post,
		"Comments": comments,
	}))
}

func PostCreateForm(c *gin.Context, user *models.User) {
	groups, _ := models.GroupList()
	c.HTML(http.StatusOK, "create_post.tmpl", pageContext(c, gin.H{
		"Groups": groups,
		"IsEdit": false,
		"Form":   PostForm{},
	}))
}

// PostCreate persists a new post for the current user and sends them
// to their own profile. Invalid input re-renders the form untouched.
func PostCreate(c *gin.Context, user *models.User) {
	form, groupID, formErr := bindPostForm(c)
	if formErr == "" {
		imagePath, thumbPath, imgErr := saveUploadedImage(c)
		if imgErr != nil {
			formErr = "Could not process the attached image"
		} else {
			post := models.Post{
				UserID:    user.ID,
				GroupID:   groupID,
				Text:      form.Text,
				ImagePath: imagePath,
				ThumbPath: thumbPath,
			}
			if err := db.Instance.Create(&post).Error; err != nil {
				formErr = "DB error"
			} else {
				c.Redirect(http.StatusFound, profilePath(user.Name))
				return
			}
		}
	}
	groups, _ := models.GroupList()
	c.HTML(http.StatusOK, "create_post.tmpl", pageContext(c, gin.H{
		"Groups": groups,
		"IsEdit": false,
		"Form":   form,
		"Error":  formErr,
	}))
}

func PostEditForm(c *gin.Context, user *models.User) {
	post, ok := loadPostForEdit(c, user)
	if !ok {
		return
	}
	groups, _ := models.GroupList()
	c.HTML(http.StatusOK, "create_post.tmpl", pageContext(c, gin.H{
		"Groups": groups,
		"IsEdit": true,
		"PostID": post.ID,
		"Form":   formFromPost(post),
	}))
}

// PostEdit updates text/group/image in place. Only the author may do
// it; anyone else lands back on the detail page with nothing changed.
func PostEdit(c *gin.Context, user *models.User) {
	post, ok := loadPostForEdit(c, user)
	if !ok {
		return
	}
	form, groupID, formErr := bindPostForm(c)
	if formErr == "" {
		imagePath, thumbPath, imgErr := saveUploadedImage(c)
		if imgErr != nil {
			formErr = "Could not process the attached image"
		} else {
			post.Text = form.Text
			post.GroupID = groupID
			if imagePath != "" {
				post.ImagePath = imagePath
				post.ThumbPath = thumbPath
			}
			if err := db.Instance.Save(&post).Error; err != nil {
				formErr = "DB error"
			} else {
				c.Redirect(http.StatusFound, postDetailPath(post.ID))
				return
			}
		}
	}
	groups, _ := models.GroupList()
	c.HTML(http.StatusOK, "create_post.tmpl", pageContext(c, gin.H{
		"Groups": groups,
		"IsEdit": true,
		"PostID": post.ID,
		"Form":   form,
		"Error":  formErr,
	}))
}

// loadPostForEdit resolves the post and enforces the author-only rule.
// Non-authors get a silent redirect to the detail page, not an error.
func loadPostForEdit(c *gin.Context, user *models.User) (models.Post, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		render404(c)
		return models.Post{}, false
	}
	post, err := models.PostByID(id)
	if err != nil {
		render404(c)
		return models.Post{}, false
	}
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		return models.Post{}, false
	}
	return post, true
}

func bindPostForm(c *gin.Context) (form PostForm, groupID *uint64, formErr string) {
	err := c.ShouldBindWith(&form, binding.Form)
	form.Text = strings.TrimSpace(form.Text)
	if err != nil || form.Text == "" {
		return form, nil, "Post text is required"
	}
	if form.Group == "" {
		return form, nil, ""
	}
	id, convErr := strconv.ParseUint(form.Group, 10, 64)
	if convErr != nil {
		return form, nil, "Unknown group"
	}
	group, dbErr := models.GroupByID(id)
	if dbErr != nil {
		return form, nil, "Unknown group"
	}
	return form, &group.ID, ""
}

func formFromPost(post models.Post) PostForm {
	form := PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.Group = strconv.FormatUint(*post.GroupID, 10)
	}
	return form
}

// saveUploadedImage stores an optional "image" multipart file plus a
// JPEG thumbnail. A request without a file is not an error.
func saveUploadedImage(c *gin.Context) (imagePath, thumbPath string, err error) {
	fileHeader, fErr := c.FormFile("image")
	if fErr != nil {
		return "", "", nil
	}
	src, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return "", "", err
	}
	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	imagePath = "posts/" + name
	if _, err = storage.Get().Save(imagePath, bytes.NewReader(data)); err != nil {
		return "", "", err
	}
	var thumbBuf bytes.Buffer
	if _, thumbErr := utils.CreateThumb(thumbSize, bytes.NewReader(data), &thumbBuf); thumbErr != nil {
		// Not an image we can decode, keep the original only
		log.Printf("No thumbnail for %s: %v", imagePath, thumbErr)
		return imagePath, "", nil
	}
	thumbPath = "thumbs/" + name + ".jpg"
	if _, err = storage.Get().Save(thumbPath, &thumbBuf); err != nil {
		return imagePath, "", nil
	}
	return imagePath, thumbPath, nil
}
