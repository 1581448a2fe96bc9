package darkframe

import "testing"

func routerStore(t *testing.T) (*Store, Picture, BlogPost) {
	t.Helper()
	s := NewStore(newMemKV())
	s.Load()
	pic, err := s.CreatePicture("https://example.com/p.jpg", "p", nil)
	if err != nil {
		t.Fatal(err)
	}
	post, err := s.CreatePost("T", "https://example.com/b.jpg", "body")
	if err != nil {
		t.Fatal(err)
	}
	return s, pic, post
}

func TestResolveStaticPaths(t *testing.T) {
	s, _, _ := routerStore(t)
	tests := []struct {
		path string
		kind ViewKind
	}{
		{"/", ViewHome},
		{"/pic", ViewGallery},
		{"/blog", ViewBlog},
		{"/admin", ViewAdmin},
	}
	for _, tt := range tests {
		if got := s.Resolve(tt.path); got.Kind != tt.kind {
			t.Errorf("Resolve(%q).Kind = %v, want %v", tt.path, got.Kind, tt.kind)
		}
	}
}

func TestResolveDetailPaths(t *testing.T) {
	s, pic, post := routerStore(t)

	d := s.Resolve("/pic/" + pic.ID)
	if d.Kind != ViewGalleryDetail || d.EntityID != pic.ID {
		t.Errorf("Resolve picture detail = %+v", d)
	}
	d = s.Resolve("/blog/" + post.ID)
	if d.Kind != ViewBlogDetail || d.EntityID != post.ID {
		t.Errorf("Resolve post detail = %+v", d)
	}
}

func TestResolveMissingEntityIsNotFound(t *testing.T) {
	s, _, _ := routerStore(t)

	d := s.Resolve("/pic/does-not-exist")
	if d.Kind != ViewNotFound || d.ListPath != "/pic" {
		t.Errorf("Resolve(/pic/does-not-exist) = %+v, want not-found pointing at /pic", d)
	}
	d = s.Resolve("/blog/does-not-exist")
	if d.Kind != ViewNotFound || d.ListPath != "/blog" {
		t.Errorf("Resolve(/blog/does-not-exist) = %+v, want not-found pointing at /blog", d)
	}
}

func TestResolveUnknownPathsRenderHome(t *testing.T) {
	s, pic, _ := routerStore(t)
	paths := []string{
		"/nope",
		"/Pic",
		"/pic/",
		"/pic/" + pic.ID + "/extra",
		"/admin/settings",
		"/blog/a/b",
	}
	for _, p := range paths {
		if got := s.Resolve(p); got.Kind != ViewHome {
			t.Errorf("Resolve(%q).Kind = %v, want ViewHome", p, got.Kind)
		}
	}
}
