package domain

import "time"

// SiteMeta is the site-wide data handed to every rendered page.
type SiteMeta struct {
	Title       string
	BaseURL     string
	AnalyticsID string // gtag measurement ID; include emitted only when set
	Author      string
	Updated     time.Time
	HasBlog     bool // blog pages and their nav entry exist only when posts do
}

// Category identifies one category listing page under blog/.
type Category struct {
	Label string // display name, e.g. "Paper Reviews"
	Slug  string // page slug, e.g. "paper-reviews"
}

// FeedEntry is one post from an external blog export, before it becomes
// a PostBody. Produced by the importer adapter, consumed by the import
// service.
type FeedEntry struct {
	Title     string
	Published time.Time
	Content   string // raw HTML from the export
	Labels    []string
	Path      string // source path of the original post, e.g. "/2019/03/foo.html"
}
