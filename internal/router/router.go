// Package router sets up the gin engine and all routes.
package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/centsible/backend/internal/controllers"
	"github.com/centsible/backend/internal/controllers/healthz"
	"github.com/centsible/backend/web"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time via ldflags.
var version = "0.0.0"

// Config sets up the router and middlewares.
//
// The returned teardown function unregisters the Prometheus metrics so
// that tests can build routers repeatedly.
func Config() (*gin.Engine, func(), error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	teardown := func() { unregisterPrometheusMetrics() }

	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings for the JSON API
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	r.SetHTMLTemplate(web.Templates())

	controllers.SetSecureCookies(os.Getenv("SECURE_COOKIE") == "true")

	log.Info().Str("version", version).Msg("Router")

	return r, teardown, nil
}

// AttachRoutes attaches all routes to the router.
func AttachRoutes(r *gin.Engine) {
	healthz.RegisterRoutes(r.Group("/healthz"))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.Register(r, "debug/pprof")
	}

	if enableMetrics, ok := os.LookupEnv("ENABLE_METRICS"); ok && enableMetrics == "true" {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.StaticFS("/static", web.Static())

	r.GET("/version", GetVersion)

	controllers.RegisterAuthRoutes(r)

	pages := r.Group("/", controllers.RequireLogin())
	controllers.RegisterDashboardRoutes(pages)
	controllers.RegisterReportRoutes(pages)

	api := r.Group("/api", controllers.RequireLoginJSON())
	controllers.RegisterAPIRoutes(api)

	log.Info().Msg("backend startup complete")
}

type VersionResponse struct {
	Version string `json:"version" example:"1.1.0"`
}

// GetVersion returns the software version of the backend.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Version: version,
	})
}
