package darkframe

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// handleView resolves the request path to a view descriptor and renders it.
// Resolution is stateless per request: back/forward navigation and direct
// links behave identically to in-site navigation.
func (a *App) handleView(c echo.Context) error {
	d := a.Store.Resolve(c.Request().URL.Path)
	switch d.Kind {
	case ViewGallery:
		return Render(c, a.Views.Gallery(a.Store.Pictures()))
	case ViewGalleryDetail:
		pic, err := a.Store.FindPicture(d.EntityID)
		if err != nil {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound("/pic"))
		}
		return Render(c, a.Views.GalleryDetail(pic))
	case ViewBlog:
		return Render(c, a.Views.Blog(a.Store.Posts()))
	case ViewBlogDetail:
		post, err := a.Store.FindPost(d.EntityID)
		if err != nil {
			return RenderStatus(c, http.StatusNotFound, a.Views.NotFound("/blog"))
		}
		return Render(c, a.Views.BlogDetail(post))
	case ViewAdmin:
		return a.renderAdmin(c, "")
	case ViewNotFound:
		return RenderStatus(c, http.StatusNotFound, a.Views.NotFound(d.ListPath))
	default:
		return a.renderHome(c)
	}
}

// renderHome serves the showcase. The slideshow offset comes from the
// server-side rotator so every request sees the current rotation step.
func (a *App) renderHome(c echo.Context) error {
	slides := previewSlides(a.Store.Pictures(), a.Store.Posts())
	return Render(c, a.Views.Home(slides, a.rotator.Tick()))
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /admin\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) handleSitemap(c echo.Context) error {
	return a.renderSitemap(c, a.Store.Pictures(), a.Store.Posts())
}

func (a *App) handleFeed(c echo.Context) error {
	return a.renderRSS(c, a.Store.Posts())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
