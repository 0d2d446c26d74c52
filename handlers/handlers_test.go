package handlers

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"yatube/auth"
	"yatube/config"
	"yatube/db"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

// setupServer builds the same route table main.go wires, on a fresh
// SQLite database.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = filepath.Join(t.TempDir(), "test.db")
	config.MEDIA_DIR = filepath.Join(t.TempDir(), "media")
	config.S3_BUCKET = ""
	config.POSTS_PER_PAGE = 10
	db.Init()
	models.Init()
	storage.Init()
	utils.ClearPageCache()

	router := gin.New()
	router.LoadHTMLGlob("../templates/*.tmpl")
	cookieStore := gormsessions.NewStore(db.Instance, true, []byte("test-session-key"))
	router.Use(sessions.Sessions("token", cookieStore))

	indexCache := &utils.PageCache{CacheTime: time.Duration(config.CACHE_SECONDS) * time.Second}
	router.GET("/", indexCache.Handler(), Index)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	router.POST("/posts/:id/comment/", AddComment)

	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", PostCreateForm)
	authRouter.POST("/create/", PostCreate)
	authRouter.GET("/posts/:id/edit/", PostEditForm)
	authRouter.POST("/posts/:id/edit/", PostEdit)
	authRouter.GET("/follow/", FollowIndex)
	authRouter.GET("/profile/:username/follow/", ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", ProfileUnfollow)

	router.GET("/auth/login/", LoginForm)
	router.POST("/auth/login/", Login)
	router.GET("/auth/signup/", SignupForm)
	router.POST("/auth/signup/", Signup)
	router.GET("/auth/logout/", Logout)

	router.GET("/about/author/", AboutAuthor)
	router.GET("/about/tech/", AboutTech)
	router.GET("/media/*filepath", MediaFetch)
	router.NoRoute(NotFound)
	return router
}

// testClient holds its own cookie jar, so each client is one browser
// session. Redirects are never followed automatically.
type testClient struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
}

func newTestClient(t *testing.T, server *httptest.Server) *testClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &testClient{
		t:      t,
		server: server,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func startServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(setupServer(t))
	t.Cleanup(server.Close)
	return server
}

func (tc *testClient) get(path string) *http.Response {
	resp, err := tc.client.Get(tc.server.URL + path)
	if err != nil {
		tc.t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func (tc *testClient) postForm(path string, data url.Values) *http.Response {
	resp, err := tc.client.PostForm(tc.server.URL+path, data)
	if err != nil {
		tc.t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

// signup registers a user and leaves the client logged in.
func (tc *testClient) signup(name, password string) models.User {
	tc.t.Helper()
	resp := tc.postForm("/auth/signup/", url.Values{"name": {name}, "password": {password}})
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		tc.t.Fatalf("signup for %q: status %d, want 302", name, resp.StatusCode)
	}
	user, err := models.UserByName(name)
	if err != nil {
		tc.t.Fatalf("signup for %q left no user row: %v", name, err)
	}
	return user
}

func mustPostRow(t *testing.T, authorID uint64, groupID *uint64, text string) models.Post {
	t.Helper()
	post := models.Post{UserID: authorID, GroupID: groupID, Text: text}
	if err := db.Instance.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func postCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := db.Instance.Model(&models.Post{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	return count
}

func commentCount(t *testing.T, postID uint64) int64 {
	t.Helper()
	var count int64
	if err := db.Instance.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	return count
}

func wantRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("status %d, want 302", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != location {
		t.Fatalf("redirect to %q, want %q", got, location)
	}
}
