package main

import (
	"log"
	"time"

	"github.com/nafim/darkframe"
	"github.com/nafim/darkframe/views"
)

func main() {
	cfg := darkframe.SiteConfig{
		Name:          darkframe.EnvOr("SITE_NAME", "Nafim"),
		URL:           darkframe.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:   darkframe.EnvOr("SITE_DESCRIPTION", "Photography and field notes by Nafim."),
		Author:        darkframe.EnvOr("SITE_AUTHOR", "Nafim"),
		Addr:          darkframe.EnvOr("ADDR", ":3000"),
		DatabasePath:  darkframe.EnvOr("DATABASE_PATH", "data/site.db"),
		RedisAddr:     darkframe.EnvOr("REDIS_ADDR", ""),
		SessionSecret: darkframe.MustEnv("ADMIN_SESSION_SECRET"),
		CookieSecure:  darkframe.EnvOr("COOKIE_SECURE", "") == "true",
	}
	if v := darkframe.EnvOr("PREVIEW_INTERVAL_MS", ""); v != "" {
		if d, err := time.ParseDuration(v + "ms"); err == nil {
			cfg.PreviewInterval = d
		}
	}

	app := darkframe.New(cfg, views.Funcs(cfg))
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
