package darkframe

import "time"

// SiteConfig holds all configuration for a darkframe site.
type SiteConfig struct {
	Name        string // Site name (default "Nafim")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path (default "data/site.db")
	RedisAddr    string // When set, content is persisted in Redis instead of SQLite

	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	PreviewInterval time.Duration // Home slideshow tick (default 3.5s)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Nafim"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.PreviewInterval == 0 {
		c.PreviewInterval = 3500 * time.Millisecond
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithKV injects a key-value backend, overriding the SQLite/Redis selection
// from SiteConfig. Tests use this to run against an in-memory fake.
func WithKV(kv KV) Option {
	return func(a *App) {
		a.KV = kv
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes, before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
