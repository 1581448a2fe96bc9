package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/nafim/darkframe"
)

// home renders the showcase: three slideshow tiles picked from the rotation
// offset, then the introduction.
func home(cfg darkframe.SiteConfig, slides []string, offset int) templ.Component {
	return page(cfg, "", true, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="max-w-6xl mx-auto px-4 py-10">`)
		if len(slides) > 0 {
			buf.WriteString(`<div class="grid grid-cols-1 sm:grid-cols-3 gap-4">`)
			for i := 0; i < 3; i++ {
				url := slides[(offset+i)%len(slides)]
				buf.WriteString(`<div class="relative aspect-[3/2] overflow-hidden rounded-lg bg-zinc-900 border border-red-900/30">`)
				buf.WriteString(`<img src="` + esc(url) + `" alt="slideshow" class="w-full h-full object-cover"/>`)
				buf.WriteString(`<div class="absolute inset-0 bg-gradient-to-t from-black/60 to-transparent"></div>`)
				buf.WriteString(`</div>`)
			}
			buf.WriteString(`</div>`)
		}
		buf.WriteString(`<div class="mt-10 text-zinc-300 space-y-3">`)
		buf.WriteString(`<p>I am <span class="text-zinc-100 font-semibold">` + esc(cfg.Name) + `</span>. In the hush between frames, stories stare back. My lens likes the dark — the places where color decides to whisper.</p>`)
		buf.WriteString(`<p>Scroll through images, read the notes, and if the hall light flickers, that&#39;s part of the show.</p>`)
		buf.WriteString(`</div></div>`)
	})
}
