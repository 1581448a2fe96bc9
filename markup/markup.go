// Package markup renders the site's restricted plain-text syntax as HTML.
//
// The syntax is deliberately tiny: a line starting with ## is a sub-heading,
// \u text \u underlines, *text* is bold and **text** is italic. The
// bold/italic assignment is swapped relative to Markdown; existing post
// bodies depend on it, so it must not be "fixed".
package markup

import (
	"context"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/a-h/templ"
)

var (
	reHeading   = regexp.MustCompile(`(?m)^##\s?(.*)$`)
	reUnderline = regexp.MustCompile(`\\u\s?([^\\]+?)\s?\\u`)
	reEmphasis  = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reStrong    = regexp.MustCompile(`\*(.*?)\*`)
)

// Transform converts src into trusted HTML. ok is false for empty input, the
// caller's signal to render nothing at all.
//
// src is escaped before any substitution runs, so tag-like text in a post
// body can never reach the output as structure: every tag in the result was
// produced by one of the passes below. Pass order matters: the emphasis
// pass must consume **x** whole before the strong pass can see its
// asterisks. Unbalanced markers simply stay behind as literal escaped text.
func Transform(src string) (string, bool) {
	if src == "" {
		return "", false
	}
	out := html.EscapeString(src)
	out = reHeading.ReplaceAllString(out, `<h3 class="text-zinc-100 text-xl font-semibold mt-4 mb-2">$1</h3>`)
	out = reUnderline.ReplaceAllString(out, `<span class="underline decoration-red-700 decoration-2 underline-offset-4">$1</span>`)
	out = reEmphasis.ReplaceAllString(out, `<em class="text-zinc-200">$1</em>`)
	out = reStrong.ReplaceAllString(out, `<strong class="text-zinc-100">$1</strong>`)
	out = strings.ReplaceAll(out, "\n", "<br />")
	return out, true
}

// Markup returns a templ component that renders src, or renders nothing for
// empty input. This is the only component allowed to emit raw HTML derived
// from user input, which is why escaping lives inside Transform and nowhere
// else.
func Markup(src string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, ok := Transform(src)
		if !ok {
			return nil
		}
		_, err := io.WriteString(w, `<div class="prose prose-invert max-w-none">`+out+`</div>`)
		return err
	})
}
