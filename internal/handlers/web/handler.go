// Package web serves the combat dashboard: HTML pages with form posts, a
// small JSON API, health and metrics endpoints.
package web

import (
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/combat-companion/internal/errors"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/dashboard"
)

// Defaults for optional handler settings
const (
	DefaultSessionCookie = "combat_session"
	DefaultSessionPrefix = "sess"
	DefaultSessionMaxAge = 12 * time.Hour
)

// Config holds the dependencies for the web handler
type Config struct {
	Dashboard dashboard.Service

	// DefaultCharacterID prefills the fetch form
	DefaultCharacterID string

	SessionCookie string
	SessionPrefix string
	SessionMaxAge time.Duration
	// SecureCookies marks the session cookie Secure, for TLS deployments
	SecureCookies bool

	// AllowOrigins enables CORS for the JSON API. Empty means same-origin only.
	AllowOrigins []string

	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Dashboard == nil {
		vb.RequiredField("Dashboard")
	}
	if c.SessionMaxAge < 0 {
		vb.Field("SessionMaxAge", "must not be negative")
	}

	return vb.Build()
}

// Handler renders the dashboard and its API
type Handler struct {
	dashboard          dashboard.Service
	defaultCharacterID string
	sessionCookie      string
	sessionPrefix      string
	sessionMaxAge      time.Duration
	secureCookies      bool
	allowOrigins       []string
	logger             *slog.Logger
	templates          *template.Template
}

// New creates a web handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tmpl, err := parseTemplates()
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	h := &Handler{
		dashboard:          cfg.Dashboard,
		defaultCharacterID: cfg.DefaultCharacterID,
		sessionCookie:      cfg.SessionCookie,
		sessionPrefix:      cfg.SessionPrefix,
		sessionMaxAge:      cfg.SessionMaxAge,
		secureCookies:      cfg.SecureCookies,
		allowOrigins:       cfg.AllowOrigins,
		logger:             cfg.Logger,
		templates:          tmpl,
	}
	if h.sessionCookie == "" {
		h.sessionCookie = DefaultSessionCookie
	}
	if h.sessionPrefix == "" {
		h.sessionPrefix = DefaultSessionPrefix
	}
	if h.sessionMaxAge == 0 {
		h.sessionMaxAge = DefaultSessionMaxAge
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}

	return h, nil
}

// Router builds the gin engine with every route registered
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(accessLog(h.logger))
	router.Use(requestMetrics())
	router.SetHTMLTemplate(h.templates)

	if len(h.allowOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = h.allowOrigins
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
		corsConfig.AllowCredentials = true
		router.Use(cors.New(corsConfig))
	}

	h.RegisterRoutes(router)
	return router
}

// RegisterRoutes registers the page, API and operational routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/healthz", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pages := router.Group("", h.sessionMiddleware)
	pages.GET("/", h.showDashboard)
	pages.POST("/character/fetch", h.fetchCharacter)
	pages.POST("/character/upload", h.uploadCharacter)
	pages.POST("/vitality/max-hp", h.setMaxHP)
	pages.POST("/strategy", h.generateStrategy)
	pages.POST("/settings/api-key", h.setAPIKey)
	pages.POST("/reset", h.reset)

	api := router.Group("/api/v1", h.sessionMiddleware)
	api.GET("/dashboard", h.apiDashboard)
	api.POST("/character/fetch", h.apiFetchCharacter)
	api.POST("/vitality/max-hp", h.apiSetMaxHP)
	api.POST("/classify", h.apiClassify)
	api.POST("/strategy", h.apiGenerateStrategy)
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
