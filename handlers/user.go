package handlers

import (
	"net/http"
	"strings"

	"yatube/auth"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserLoginRequest struct {
	Name     string `form:"name" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type UserSignupRequest struct {
	Name     string `form:"name" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", pageContext(c, gin.H{
		"Next": c.Query("next"),
	}))
}

func Login(c *gin.Context) {
	req := UserLoginRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", pageContext(c, gin.H{
			"Error": "Username and password are required",
			"Next":  c.PostForm("next"),
		}))
		return
	}
	user, ok := models.UserLogin(req.Name, req.Password)
	if !ok {
		c.HTML(http.StatusOK, "login.tmpl", pageContext(c, gin.H{
			"Error": "Wrong username or password",
			"Next":  c.PostForm("next"),
		}))
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
}

func SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", pageContext(c, nil))
}

func Signup(c *gin.Context) {
	req := UserSignupRequest{}
	if err := c.ShouldBindWith(&req, binding.Form); err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", pageContext(c, gin.H{
			"Error": "Username and password are required",
		}))
		return
	}
	if _, err := models.UserByName(req.Name); err == nil {
		c.HTML(http.StatusOK, "signup.tmpl", pageContext(c, gin.H{
			"Error": "This username is taken",
		}))
		return
	}
	user, err := models.UserCreate(req.Name, req.Password)
	if err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", pageContext(c, gin.H{
			"Error": "Could not create the account",
		}))
		return
	}
	auth.LoadSession(c).LoginUser(user.ID)
	c.Redirect(http.StatusFound, "/")
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

// safeNext keeps post-login redirects on this site.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
