// Package views provides the default templ components for a darkframe site:
// a dark, red-accented theme matching the photographer's original design.
// Components are plain ComponentFuncs writing HTML into the response. Every
// dynamic value is escaped at this boundary; blog bodies alone pass through
// the markup transformer, which does its own escaping first.
package views

import (
	"github.com/a-h/templ"

	"github.com/nafim/darkframe"
)

// Funcs wires the default views into a darkframe.ViewFuncs, capturing cfg
// for branding and canonical URLs.
func Funcs(cfg darkframe.SiteConfig) darkframe.ViewFuncs {
	return darkframe.ViewFuncs{
		Home: func(slides []string, offset int) templ.Component {
			return home(cfg, slides, offset)
		},
		Gallery: func(pics []darkframe.Picture) templ.Component {
			return gallery(cfg, pics)
		},
		GalleryDetail: func(pic darkframe.Picture) templ.Component {
			return galleryDetail(cfg, pic)
		},
		Blog: func(posts []darkframe.BlogPost) templ.Component {
			return blog(cfg, posts)
		},
		BlogDetail: func(post darkframe.BlogPost) templ.Component {
			return blogDetail(cfg, post)
		},
		AdminLogin: func(errMsg, csrfToken string) templ.Component {
			return adminLogin(cfg, errMsg, csrfToken)
		},
		AdminSetup: func(errMsg, csrfToken string) templ.Component {
			return adminSetup(cfg, errMsg, csrfToken)
		},
		AdminDashboard: func(msg, csrfToken string) templ.Component {
			return adminDashboard(cfg, msg, csrfToken)
		},
		NotFound: func(listPath string) templ.Component {
			return notFound(cfg, listPath)
		},
		ServerError: func() templ.Component {
			return serverError(cfg)
		},
	}
}
