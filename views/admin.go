package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/nafim/darkframe"
)

func adminLogin(cfg darkframe.SiteConfig, errMsg, csrfToken string) templ.Component {
	return page(cfg, "Admin", false, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="max-w-sm mx-auto px-4 py-16">`)
		buf.WriteString(`<h2 class="text-2xl font-semibold text-zinc-100 mb-6">Admin login</h2>`)
		if errMsg != "" {
			buf.WriteString(`<p class="mb-4 text-sm text-red-400 border border-red-900/40 bg-red-950/30 rounded px-3 py-2">` + esc(errMsg) + `</p>`)
		}
		buf.WriteString(`<form method="POST" action="/admin/login" class="space-y-4">`)
		buf.WriteString(csrfField(csrfToken))
		buf.WriteString(formInput("username", "Username", "text"))
		buf.WriteString(formInput("password", "Password", "password"))
		buf.WriteString(`<button type="submit" class="w-full bg-red-900 hover:bg-red-800 text-zinc-100 rounded px-3 py-2 font-semibold">Log in</button>`)
		buf.WriteString(`</form></div>`)
	})
}

func adminSetup(cfg darkframe.SiteConfig, errMsg, csrfToken string) templ.Component {
	return page(cfg, "Admin", false, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="max-w-sm mx-auto px-4 py-16">`)
		buf.WriteString(`<h2 class="text-2xl font-semibold text-zinc-100 mb-2">First-time setup</h2>`)
		buf.WriteString(`<p class="mb-6 text-sm text-zinc-400">No admin password is set yet. Choose one that is an anagram of <code class="text-red-400">` + esc(darkframe.Passphrase) + `</code>.</p>`)
		if errMsg != "" {
			buf.WriteString(`<p class="mb-4 text-sm text-red-400 border border-red-900/40 bg-red-950/30 rounded px-3 py-2">` + esc(errMsg) + `</p>`)
		}
		buf.WriteString(`<form method="POST" action="/admin/password" class="space-y-4">`)
		buf.WriteString(csrfField(csrfToken))
		buf.WriteString(formInput("password", "New password", "password"))
		buf.WriteString(`<button type="submit" class="w-full bg-red-900 hover:bg-red-800 text-zinc-100 rounded px-3 py-2 font-semibold">Set password</button>`)
		buf.WriteString(`</form></div>`)
	})
}

func adminDashboard(cfg darkframe.SiteConfig, msg, csrfToken string) templ.Component {
	return page(cfg, "Admin", false, func(buf *bytes.Buffer) {
		buf.WriteString(`<div class="max-w-3xl mx-auto px-4 py-10">`)
		buf.WriteString(`<div class="flex items-center justify-between mb-6">`)
		buf.WriteString(`<h2 class="text-2xl font-semibold text-zinc-100">Dashboard</h2>`)
		buf.WriteString(`<form method="POST" action="/admin/logout">` + csrfField(csrfToken))
		buf.WriteString(`<button type="submit" class="text-sm text-zinc-400 hover:text-red-500">Log out</button></form>`)
		buf.WriteString(`</div>`)
		if msg != "" {
			buf.WriteString(`<p class="mb-6 text-sm text-zinc-200 border border-red-900/40 bg-red-950/30 rounded px-3 py-2">` + esc(msg) + `</p>`)
		}

		buf.WriteString(`<section class="mb-10">`)
		buf.WriteString(`<h3 class="text-lg font-semibold text-zinc-100 mb-3">Add picture</h3>`)
		buf.WriteString(`<form method="POST" action="/admin/pictures" class="space-y-3">`)
		buf.WriteString(csrfField(csrfToken))
		buf.WriteString(formInput("url", "Image URL", "text"))
		buf.WriteString(formInput("description", "Description", "text"))
		buf.WriteString(formInput("tags", "Tags (comma separated)", "text"))
		buf.WriteString(`<button type="submit" class="bg-red-900 hover:bg-red-800 text-zinc-100 rounded px-4 py-2 font-semibold">Publish picture</button>`)
		buf.WriteString(`</form></section>`)

		buf.WriteString(`<section class="mb-10">`)
		buf.WriteString(`<h3 class="text-lg font-semibold text-zinc-100 mb-3">Add blog post</h3>`)
		buf.WriteString(`<form method="POST" action="/admin/posts" class="space-y-3">`)
		buf.WriteString(csrfField(csrfToken))
		buf.WriteString(formInput("title", "Title", "text"))
		buf.WriteString(formInput("image", "Cover image URL", "text"))
		buf.WriteString(`<textarea name="body" rows="8" placeholder="Body (## heading, *bold*, **italic**, \u underline \u)" class="w-full bg-zinc-900 border border-red-900/40 rounded px-3 py-2 text-zinc-100 placeholder-zinc-500"></textarea>`)
		buf.WriteString(`<button type="submit" class="bg-red-900 hover:bg-red-800 text-zinc-100 rounded px-4 py-2 font-semibold">Publish post</button>`)
		buf.WriteString(`</form></section>`)

		buf.WriteString(`<section>`)
		buf.WriteString(`<h3 class="text-lg font-semibold text-zinc-100 mb-3">Change password</h3>`)
		buf.WriteString(`<form method="POST" action="/admin/password" class="space-y-3">`)
		buf.WriteString(csrfField(csrfToken))
		buf.WriteString(formInput("password", "New password", "password"))
		buf.WriteString(`<button type="submit" class="bg-red-900 hover:bg-red-800 text-zinc-100 rounded px-4 py-2 font-semibold">Update password</button>`)
		buf.WriteString(`</form></section>`)

		buf.WriteString(`</div>`)
	})
}
