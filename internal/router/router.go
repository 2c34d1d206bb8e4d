package router

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stockroom-app/inventory/internal/controllers"
	"github.com/stockroom-app/inventory/internal/httperrors"
	"github.com/stockroom-app/inventory/internal/views"
)

// Options configures the router.
type Options struct {
	SessionSecret    string
	CORSAllowOrigins []string
	EnablePprof      bool
}

// Config creates the engine with all middlewares and the templates.
//
// The returned teardown function must be called when the engine is not
// used anymore.
func Config(options Options) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, func() {}, err
	}

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	tmpl, err := views.Templates()
	if err != nil {
		teardown()
		return nil, func() {}, fmt.Errorf("error parsing templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoRoute(func(c *gin.Context) {
		httperrors.New(c, http.StatusNotFound, "Page not found.")
	})
	r.NoMethod(func(c *gin.Context) {
		httperrors.New(c, http.StatusMethodNotAllowed, "This HTTP method is not allowed for the page you requested.")
	})
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
	r.Use(MetricsMiddleware())

	// CORS settings
	if len(options.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", options.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     options.CORSAllowOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	store := cookie.NewStore([]byte(options.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("inventory", store))

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	return r, teardown, nil
}

// AttachRoutes attaches all routes to the router group that is passed in.
func AttachRoutes(co controllers.Controller, group *gin.RouterGroup, enablePprof bool) {
	group.GET("/", co.GetIndex)
	group.GET("/healthz", co.GetHealthz)
	group.GET("/version", co.GetVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if enablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	co.RegisterCategoryRoutes(group.Group("/categories"))
	co.RegisterItemRoutes(group.Group("/items"))
}
