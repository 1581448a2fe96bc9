// Package darkframe is a photographer portfolio/blog engine built with Go,
// Echo, and templ. It serves a home showcase with a rotating preview, a
// picture gallery, a blog written in a restricted markup syntax, and an
// admin surface for adding content, all persisted as JSON documents in a
// key-value store (SQLite by default, Redis optionally).
//
// Users provide their templ components via the ViewFuncs struct, and
// darkframe handles routing, sessions, persistence, and the markup pipeline.
package darkframe

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// ViewFuncs holds user-provided templ components the engine calls when
// rendering pages. This inversion keeps the engine free of template code
// while templates keep full ownership of markup and styling.
type ViewFuncs struct {
	Home          func(slides []string, offset int) templ.Component
	Gallery       func(pics []Picture) templ.Component
	GalleryDetail func(pic Picture) templ.Component
	Blog          func(posts []BlogPost) templ.Component
	BlogDetail    func(post BlogPost) templ.Component

	AdminLogin     func(errMsg, csrfToken string) templ.Component
	AdminSetup     func(errMsg, csrfToken string) templ.Component
	AdminDashboard func(msg, csrfToken string) templ.Component

	NotFound    func(listPath string) templ.Component
	ServerError func() templ.Component
}

// App is the central darkframe application. It wires together the KV
// backend, content store, resolver, handlers, and user-provided templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	KV     KV
	Views  ViewFuncs

	rotator      *previewRotator
	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a darkframe App with the given configuration and views.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start opens the KV backend, loads the content store, starts the preview
// rotator, sets up middleware and routes, and serves until shutdown.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("darkframe: SessionSecret is required")
	}

	if a.KV == nil {
		if a.Config.RedisAddr != "" {
			a.KV = NewRedisKV(a.Config.RedisAddr)
		} else {
			kv, err := NewSQLiteKV(a.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("darkframe: init kv store: %w", err)
			}
			a.KV = kv
		}
	}

	a.Store = NewStore(a.KV)
	a.Store.Load()

	a.rotator = newPreviewRotator(a.Config.PreviewInterval)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Admin mutations. Reads still go through the resolver below.
	e.POST("/admin/login", a.handleAdminLogin)
	e.POST("/admin/logout", handleAdminLogout)
	e.POST("/admin/pictures", a.handleAdminAddPicture)
	e.POST("/admin/posts", a.handleAdminAddPost)
	e.POST("/admin/password", a.handleAdminSetPassword)

	// Every page GET resolves through the view resolver, so unrecognized
	// paths render Home without redirecting the visible address.
	e.GET("/", a.handleView)
	e.GET("/*", a.handleView)
}

// Close stops the preview rotator and releases the KV backend. Rotator
// cancellation is unconditional; no ticker survives shutdown.
func (a *App) Close() error {
	if a.rotator != nil {
		a.rotator.Stop()
	}
	if a.KV != nil {
		return a.KV.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("darkframe: required environment variable %s is not set", key)
	}
	return v
}
