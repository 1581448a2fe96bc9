package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/nafim/darkframe"
)

func gallery(cfg darkframe.SiteConfig, pics []darkframe.Picture) templ.Component {
	return page(cfg, "Pictures", false, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="max-w-6xl mx-auto px-4 py-10">`)
		buf.WriteString(`<h2 class="text-2xl font-semibold text-zinc-100 mb-6">Pictures</h2>`)
		buf.WriteString(`<div class="grid gap-5 sm:grid-cols-2 lg:grid-cols-3">`)
		for _, p := range pics {
			buf.WriteString(`<a href="/pic/` + pathEscape(p.ID) + `" class="group rounded-lg overflow-hidden bg-zinc-900 border border-red-900/30 block">`)
			buf.WriteString(`<div class="relative aspect-[4/3] overflow-hidden">`)
			buf.WriteString(`<img src="` + esc(p.URL) + `" alt="` + esc(p.Description) + `" class="w-full h-full object-cover transition-transform duration-700 group-hover:scale-105"/>`)
			buf.WriteString(`<div class="absolute inset-0 bg-gradient-to-t from-black/60 to-transparent"></div>`)
			buf.WriteString(`</div><div class="p-4">`)
			buf.WriteString(`<p class="text-zinc-200 text-sm">` + esc(p.Description) + `</p>`)
			buf.WriteString(`<div class="mt-3 flex flex-wrap gap-2">`)
			for _, t := range p.Tags {
				buf.WriteString(tagPill(t))
			}
			buf.WriteString(`</div></div></a>`)
		}
		buf.WriteString(`</div></div>`)
	})
}

func galleryDetail(cfg darkframe.SiteConfig, pic darkframe.Picture) templ.Component {
	return page(cfg, "Pictures", false, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="max-w-4xl mx-auto px-4 py-10">`)
		buf.WriteString(`<a href="/pic" class="text-sm text-zinc-400 hover:text-red-500">&larr; All pictures</a>`)
		buf.WriteString(`<div class="mt-4 rounded-lg overflow-hidden bg-zinc-900 border border-red-900/30">`)
		buf.WriteString(`<img src="` + esc(pic.URL) + `" alt="` + esc(pic.Description) + `" class="w-full object-cover"/>`)
		buf.WriteString(`<div class="p-5">`)
		buf.WriteString(`<p class="text-zinc-200">` + esc(pic.Description) + `</p>`)
		buf.WriteString(`<div class="mt-3 flex flex-wrap gap-2">`)
		for _, t := range pic.Tags {
			buf.WriteString(tagPill(t))
		}
		buf.WriteString(`</div></div></div></div>`)
	})
}
