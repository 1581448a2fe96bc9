package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/nafim/darkframe"
)

func notFound(cfg darkframe.SiteConfig, listPath string) templ.Component {
	return page(cfg, "Not found", false, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="max-w-xl mx-auto px-4 py-20 text-center">`)
		buf.WriteString(`<h2 class="text-3xl font-semibold text-zinc-100">Nothing here</h2>`)
		buf.WriteString(`<p class="mt-3 text-zinc-400">That entry has vanished into the dark.</p>`)
		back := listPath
		if back == "" {
			back = "/"
		}
		buf.WriteString(`<a href="` + esc(back) + `" class="mt-6 inline-block text-red-500 hover:text-red-400">&larr; Go back</a>`)
		buf.WriteString(`</div>`)
	})
}

func serverError(cfg darkframe.SiteConfig) templ.Component {
	return page(cfg, "Error", false, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="max-w-xl mx-auto px-4 py-20 text-center">`)
		buf.WriteString(`<h2 class="text-3xl font-semibold text-zinc-100">Something broke</h2>`)
		buf.WriteString(`<p class="mt-3 text-zinc-400">The darkroom flooded. Try again in a moment.</p>`)
		buf.WriteString(`<a href="/" class="mt-6 inline-block text-red-500 hover:text-red-400">&larr; Home</a>`)
		buf.WriteString(`</div>`)
	})
}
