package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/nafim/darkframe"
	"github.com/nafim/darkframe/markup"
)

func blog(cfg darkframe.SiteConfig, posts []darkframe.BlogPost) templ.Component {
	return page(cfg, "Blog", false, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="max-w-3xl mx-auto px-4 py-10">`)
		buf.WriteString(`<h2 class="text-2xl font-semibold text-zinc-100 mb-6">Blog</h2>`)
		buf.WriteString(`<div class="space-y-10">`)
		for _, p := range posts {
			buf.WriteString(`<article class="rounded-xl overflow-hidden bg-zinc-900 border border-red-900/30">`)
			buf.WriteString(`<a href="/blog/` + pathEscape(p.ID) + `">`)
			buf.WriteString(`<img src="` + esc(p.Image) + `" alt="` + esc(p.Title) + `" class="w-full h-64 object-cover"/>`)
			buf.WriteString(`</a><div class="p-5">`)
			buf.WriteString(`<h3 class="text-xl font-semibold text-zinc-100"><a href="/blog/` + pathEscape(p.ID) + `" class="hover:text-red-500">` + esc(p.Title) + `</a></h3>`)
			if ex := darkframe.Excerpt(p.Body); ex != "" {
				buf.WriteString(`<p class="mt-3 text-zinc-300 text-sm">` + esc(ex) + `</p>`)
			}
			buf.WriteString(`</div></article>`)
		}
		buf.WriteString(`</div></div>`)
	})
}

func blogDetail(cfg darkframe.SiteConfig, post darkframe.BlogPost) templ.Component {
	return page(cfg, post.Title, false, func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="max-w-3xl mx-auto px-4 py-10">`)
		buf.WriteString(`<a href="/blog" class="text-sm text-zinc-400 hover:text-red-500">&larr; All posts</a>`)
		buf.WriteString(`<h1 class="mt-4 text-3xl font-semibold text-zinc-100">` + esc(post.Title) + `</h1>`)
		buf.WriteString(`<img src="` + esc(post.Image) + `" alt="` + esc(post.Title) + `" class="mt-6 w-full rounded-lg border border-red-900/30 object-cover"/>`)
		buf.WriteString(`<div class="mt-6">`)
		writeComponent(buf, markup.Markup(post.Body))
		buf.WriteString(`</div>`)
		buf.WriteString(`<script type="application/ld+json">` + darkframe.BlogPostingJsonLD(post, cfg) + `</script>`)
		buf.WriteString(`</article>`)
	})
}

// writeComponent renders a nested component into the page buffer.
func writeComponent(buf *bytes.Buffer, c templ.Component) {
	_ = c.Render(context.Background(), io.Writer(buf))
}
