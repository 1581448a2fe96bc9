package darkframe

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

func (a *App) renderSitemap(c echo.Context, pics []Picture, posts []BlogPost) error {
	base := a.Config.URL
	urls := []sitemapURL{
		{Loc: BuildURL(base)},
		{Loc: BuildURL(base, "pic")},
		{Loc: BuildURL(base, "blog")},
	}
	for _, p := range pics {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "pic", p.ID)})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{Loc: BuildURL(base, "blog", p.ID)})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
