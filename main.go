package main

import (
	"log"
	"strings"
	"time"

	"yatube/auth"
	"yatube/config"
	"yatube/db"
	"yatube/handlers"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media"})))
	}

	// Public pages. The home page alone sits behind the TTL cache.
	indexCache := &utils.PageCache{CacheTime: time.Duration(config.CACHE_SECONDS) * time.Second}
	router.GET("/", indexCache.Handler(), handlers.Index)
	router.GET("/group/:slug/", handlers.GroupPosts)
	router.GET("/profile/:username/", handlers.Profile)
	router.GET("/posts/:id/", handlers.PostDetail)
	router.POST("/posts/:id/comment/", handlers.AddComment)

	// Pages for signed-in users
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", handlers.PostCreateForm)
	authRouter.POST("/create/", handlers.PostCreate)
	authRouter.GET("/posts/:id/edit/", handlers.PostEditForm)
	authRouter.POST("/posts/:id/edit/", handlers.PostEdit)
	authRouter.GET("/follow/", handlers.FollowIndex)
	authRouter.GET("/profile/:username/follow/", handlers.ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", handlers.ProfileUnfollow)

	// Identity pages
	router.GET("/auth/login/", handlers.LoginForm)
	router.POST("/auth/login/", handlers.Login)
	router.GET("/auth/signup/", handlers.SignupForm)
	router.POST("/auth/signup/", handlers.Signup)
	router.GET("/auth/logout/", handlers.Logout)

	// Misc
	router.GET("/about/author/", handlers.AboutAuthor)
	router.GET("/about/tech/", handlers.AboutTech)
	router.GET("/media/*filepath", handlers.MediaFetch)
	router.NoRoute(handlers.NotFound)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
