// Package controllers implements the HTTP handlers for the finance
// tracker: the server rendered pages and the JSON summary endpoint.
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "session"

	// SessionDuration is how long sessions last.
	SessionDuration = 30 * 24 * time.Hour

	// userKey is the gin context key the middleware stores the
	// authenticated user under.
	userKey = "user"
)

// secureCookies is toggled via SECURE_COOKIE, see router setup.
var secureCookies = false

// SetSecureCookies configures whether session cookies carry the Secure
// attribute. Off by default so local plain-HTTP development works.
func SetSecureCookies(enabled bool) {
	secureCookies = enabled
}

// CurrentUser returns the authenticated user for the request.
//
// Only valid behind RequireLogin or RequireLoginJSON; the user is carried
// in the request scoped gin context, never in package state.
func CurrentUser(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}

// RequireLogin resolves the session cookie for page routes.
//
// Requests without a valid session are redirected to the login page and
// stale cookies are cleared.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessionUser(c)
		if err != nil {
			clearSessionCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireLoginJSON resolves the session cookie for API routes.
//
// API clients get a 401 with a JSON body instead of a redirect.
func RequireLoginJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessionUser(c)
		if err != nil {
			httputil.NewError(c, http.StatusUnauthorized, errors.New("you need to log in to use this endpoint"))
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func sessionUser(c *gin.Context) (models.User, error) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil || cookie == "" {
		return models.User{}, http.ErrNoCookie
	}

	return models.SessionUser(models.DB, cookie)
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(SessionDuration.Seconds()), "/", "", secureCookies, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secureCookies, true)
}
