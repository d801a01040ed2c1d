package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/centsible/backend/internal/auth"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the credential lifecycle routes.
func RegisterAuthRoutes(r *gin.Engine) {
	r.GET("/register", GetRegister)
	r.POST("/register", PostRegister)
	r.GET("/login", GetLogin)
	r.POST("/login", PostLogin)
}

type authPage struct {
	Title    string
	Username string
	Error    string
	Notice   string
}

// GetRegister renders the registration page.
func GetRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", authPage{Title: "Register"})
}

// PostRegister creates a new user.
func PostRegister(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		c.HTML(http.StatusBadRequest, "register.html", authPage{Title: "Register", Error: "Username and password required"})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		httputil.LogUnexpected(c, err)
		c.HTML(http.StatusInternalServerError, "register.html", authPage{Title: "Register", Error: "An error occurred. Please try again."})
		return
	}

	user := models.User{Username: username, PasswordHash: hash}
	err = models.DB.Create(&user).Error
	if errors.Is(err, models.ErrUsernameTaken) {
		c.HTML(http.StatusBadRequest, "register.html", authPage{Title: "Register", Error: "Username already exists"})
		return
	}
	if err != nil {
		httputil.LogUnexpected(c, err)
		c.HTML(http.StatusInternalServerError, "register.html", authPage{Title: "Register", Error: "An error occurred. Please try again."})
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

// GetLogin renders the login page.
func GetLogin(c *gin.Context) {
	// Logged in users do not need the form again
	if _, err := sessionUser(c); err == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "login.html", authPage{Title: "Login"})
}

// PostLogin verifies credentials and opens a session.
//
// The same message is used for unknown usernames and wrong passwords so
// the form does not leak which usernames exist.
func PostLogin(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	user, err := models.UserByUsername(models.DB, username)
	if err != nil || !auth.CheckPassword(password, user.PasswordHash) {
		c.HTML(http.StatusUnauthorized, "login.html", authPage{Title: "Login", Error: "Invalid credentials"})
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		httputil.LogUnexpected(c, err)
		c.HTML(http.StatusInternalServerError, "login.html", authPage{Title: "Login", Error: "An error occurred. Please try again."})
		return
	}

	err = models.CreateSession(models.DB, token, user.ID, time.Now().Add(SessionDuration))
	if err != nil {
		httputil.LogUnexpected(c, err)
		c.HTML(http.StatusInternalServerError, "login.html", authPage{Title: "Login", Error: "An error occurred. Please try again."})
		return
	}

	setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/dashboard")
}

// GetLogout closes the session and clears the cookie.
func GetLogout(c *gin.Context) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		if err := models.DeleteSession(models.DB, cookie); err != nil {
			httputil.LogUnexpected(c, err)
		}
	}

	clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/login")
}
