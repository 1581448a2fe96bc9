package darkframe

// Picture is a gallery entry. The image itself lives elsewhere; only the URL
// reference is stored. The ID is assigned once at creation and never changes.
type Picture struct {
	ID          string   `json:"id"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// BlogPost is a blog entry whose body is written in the site's restricted
// markup syntax (## headings, \u underline \u, *bold*, **italic**).
type BlogPost struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Body  string `json:"body"`
}
