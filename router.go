package darkframe

import "strings"

// ViewKind enumerates the terminal views a path can resolve to.
type ViewKind int

const (
	ViewHome ViewKind = iota
	ViewGallery
	ViewGalleryDetail
	ViewBlog
	ViewBlogDetail
	ViewAdmin
	ViewNotFound
)

// ViewDescriptor is the outcome of resolving a path. For detail views
// EntityID carries the resolved identifier; for ViewNotFound ListPath points
// back at the list the missing entity belonged to.
type ViewDescriptor struct {
	Kind     ViewKind
	EntityID string
	ListPath string
}

// Resolve maps a request path to a view. Matching is case-sensitive and
// exact; any unrecognized path renders Home without redirecting, so the
// visible address is preserved. Detail paths are resolved against the
// collections here: a well-formed path with an unknown identifier is a
// definite not-found outcome, not a fallback to the list.
func (s *Store) Resolve(path string) ViewDescriptor {
	switch {
	case path == "/":
		return ViewDescriptor{Kind: ViewHome}
	case path == "/pic":
		return ViewDescriptor{Kind: ViewGallery}
	case path == "/blog":
		return ViewDescriptor{Kind: ViewBlog}
	case path == "/admin":
		return ViewDescriptor{Kind: ViewAdmin}
	case strings.HasPrefix(path, "/pic/"):
		id := path[len("/pic/"):]
		if id == "" || strings.Contains(id, "/") {
			return ViewDescriptor{Kind: ViewHome}
		}
		if _, err := s.FindPicture(id); err != nil {
			return ViewDescriptor{Kind: ViewNotFound, ListPath: "/pic"}
		}
		return ViewDescriptor{Kind: ViewGalleryDetail, EntityID: id}
	case strings.HasPrefix(path, "/blog/"):
		id := path[len("/blog/"):]
		if id == "" || strings.Contains(id, "/") {
			return ViewDescriptor{Kind: ViewHome}
		}
		if _, err := s.FindPost(id); err != nil {
			return ViewDescriptor{Kind: ViewNotFound, ListPath: "/blog"}
		}
		return ViewDescriptor{Kind: ViewBlogDetail, EntityID: id}
	default:
		return ViewDescriptor{Kind: ViewHome}
	}
}
