package darkframe

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	GUID        string `xml:"guid"`
}

// renderRSS writes the blog feed. Posts carry no dates, so items rely on
// GUIDs for reader-side dedup.
func (a *App) renderRSS(c echo.Context, posts []BlogPost) error {
	base := a.Config.URL
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		postURL := BuildURL(base, "blog", p.ID)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: Excerpt(p.Body),
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       a.Config.Name,
			Link:        base,
			Description: a.Config.Description,
			Items:       items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(feed)
}
