package importer

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"folio/internal/core/domain"
)

// atomFeed maps the subset of a Blogger Atom export we care about.
// Blogger extends Atom with its own namespace for post type and status.
type atomFeed struct {
	XMLName xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title      string         `xml:"title"`
	Published  string         `xml:"published"`
	Content    string         `xml:"content"`
	Categories []atomCategory `xml:"category"`

	Type     string `xml:"http://schemas.google.com/blogger/2018 type"`
	Status   string `xml:"http://schemas.google.com/blogger/2018 status"`
	Filename string `xml:"http://schemas.google.com/blogger/2018 filename"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// BlogspotImporter parses Blogger Atom exports into feed entries.
type BlogspotImporter struct{}

// NewBlogspotImporter creates a new Blogspot export parser
func NewBlogspotImporter() *BlogspotImporter {
	return &BlogspotImporter{}
}

// ParseFile reads a Blogger export file and returns its live posts.
func (i *BlogspotImporter) ParseFile(path string) ([]domain.FeedEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	return i.Parse(f)
}

// Parse extracts published blog posts from an Atom export stream.
// Drafts, pages, and non-post entries are skipped. Entries come back
// newest first.
func (i *BlogspotImporter) Parse(r io.Reader) ([]domain.FeedEntry, error) {
	var feed atomFeed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to parse Atom export: %w", err)
	}

	var entries []domain.FeedEntry
	for _, entry := range feed.Entries {
		if entry.Type != "POST" || entry.Status != "LIVE" {
			continue
		}

		published, err := time.Parse(time.RFC3339, entry.Published)
		if err != nil {
			published = time.Now()
		}

		var labels []string
		for _, c := range entry.Categories {
			if c.Term != "" {
				labels = append(labels, c.Term)
			}
		}

		entries = append(entries, domain.FeedEntry{
			Title:     entry.Title,
			Published: published,
			Content:   entry.Content,
			Labels:    labels,
			Path:      entry.Filename,
		})
	}

	sort.Slice(entries, func(a, b int) bool {
		return entries[a].Published.After(entries[b].Published)
	})

	return entries, nil
}
