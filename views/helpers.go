package views

import (
	"html"
	"net/url"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// pathEscape escapes an identifier for use in a URL path segment.
func pathEscape(s string) string {
	return url.PathEscape(s)
}

// tagPill returns the markup for one tag badge.
func tagPill(tag string) string {
	return `<span class="text-[11px] uppercase tracking-wide bg-red-900/20 text-red-400 px-2 py-1 rounded border border-red-900/40">#` + esc(tag) + `</span>`
}

// formInput returns a themed text input.
func formInput(name, placeholder, typ string) string {
	return `<input name="` + esc(name) + `" type="` + esc(typ) + `" placeholder="` + esc(placeholder) +
		`" class="w-full bg-zinc-900 border border-red-900/40 rounded px-3 py-2 text-zinc-100 placeholder-zinc-500"/>`
}

// csrfField returns the hidden CSRF token field every mutating form carries.
func csrfField(token string) string {
	return `<input type="hidden" name="_csrf" value="` + esc(token) + `"/>`
}
