package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/nafim/darkframe"
)

// navLink is one entry in the top navigation bar.
type navLink struct {
	Label string
	Path  string
}

var navLinks = []navLink{
	{"Home", "/"},
	{"Pictures", "/pic"},
	{"Blog", "/blog"},
	{"Admin", "/admin"},
}

// page wraps body in the site shell: head with meta and JSON-LD, navbar,
// optional hero banner, and footer.
func page(cfg darkframe.SiteConfig, title string, hero bool, body func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		pageTitle := cfg.Name
		if title != "" {
			pageTitle = title + " — " + cfg.Name
		}
		buf.WriteString(`<title>` + esc(pageTitle) + `</title>`)
		if cfg.Description != "" {
			buf.WriteString(`<meta name="description" content="` + esc(cfg.Description) + `"/>`)
		}
		buf.WriteString(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"/>`)
		buf.WriteString(`<script src="https://cdn.tailwindcss.com"></script>`)
		buf.WriteString(`<link rel="stylesheet" href="/public/site.css"/>`)
		buf.WriteString(`<link rel="icon" type="image/svg+xml" href="/favicon.svg"/>`)
		buf.WriteString(`<script type="application/ld+json">` + darkframe.WebsiteJsonLD(cfg) + `</script>`)
		buf.WriteString(`</head><body class="min-h-screen bg-[#080808] text-zinc-100">`)

		buf.WriteString(`<nav class="max-w-6xl mx-auto px-4 py-4 flex items-center justify-between">`)
		buf.WriteString(`<a href="/" class="text-lg font-semibold tracking-wide text-zinc-100">` + esc(cfg.Name) + `</a>`)
		buf.WriteString(`<div class="flex gap-5 text-sm text-zinc-400">`)
		for _, l := range navLinks {
			buf.WriteString(`<a href="` + l.Path + `" class="hover:text-red-500 transition-colors">` + esc(l.Label) + `</a>`)
		}
		buf.WriteString(`</div></nav>`)

		if hero {
			buf.WriteString(`<header class="relative h-64 sm:h-80 overflow-hidden border-b border-red-900/30">`)
			buf.WriteString(`<div class="absolute inset-0 bg-gradient-to-b from-red-950/40 to-black"></div>`)
			buf.WriteString(`<div class="relative h-full flex items-center justify-center">`)
			buf.WriteString(`<h1 class="text-4xl sm:text-5xl font-semibold tracking-tight">` + esc(cfg.Name) + `</h1>`)
			buf.WriteString(`</div></header>`)
		}

		body(&buf)

		buf.WriteString(`<footer class="max-w-6xl mx-auto px-4 py-8 text-xs text-zinc-500">`)
		if cfg.Author != "" {
			buf.WriteString(`&copy; ` + esc(cfg.Author) + ` &middot; `)
		}
		buf.WriteString(`<a href="/feed.xml" class="hover:text-red-500">RSS</a>`)
		buf.WriteString(`</footer></body></html>`)

		_, err := w.Write(buf.Bytes())
		return err
	})
}
