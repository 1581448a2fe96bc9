package darkframe

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
)

// BuildURL joins a base URL with path segments.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// JoinTags joins tags with ", " for form fields and meta tags.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// Excerpt returns the first line of a post body with markup markers
// stripped, for feed descriptions and list previews.
func Excerpt(body string) string {
	line := body
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimPrefix(line, "##")
	line = strings.ReplaceAll(line, "*", "")
	line = strings.ReplaceAll(line, `\u`, "")
	return strings.TrimSpace(line)
}

// WebsiteJsonLD returns a JSON-LD string for a WebSite schema using SiteConfig.
func WebsiteJsonLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Name,
		"url":         BuildURL(cfg.URL),
		"description": cfg.Description,
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD returns a JSON-LD string for a BlogPosting schema.
func BlogPostingJsonLD(post BlogPost, cfg SiteConfig) string {
	postURL := BuildURL(cfg.URL, "blog", post.ID)
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "BlogPosting",
		"headline": post.Title,
		"image":    post.Image,
		"url":      postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
