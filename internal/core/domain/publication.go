package domain

import (
	"fmt"
	"strings"
	"time"
)

// Publication is one entry in the publications list.
// Entries render exactly in authored order; reverse-chronological ordering
// is an authoring convention, not something the build enforces.
type Publication struct {
	Title   string   `yaml:"title"`
	Authors []string `yaml:"authors"`
	Venue   string   `yaml:"venue"`
	Year    int      `yaml:"year"`

	// Optional links. Only the ones actually provided are rendered.
	PDF   string `yaml:"pdf,omitempty"`
	ArXiv string `yaml:"arxiv,omitempty"`
	Code  string `yaml:"code,omitempty"`
}

// PublicationLink is a provided link in display order.
type PublicationLink struct {
	Label string
	URL   string
}

// ProvidedLinks returns only the links that are set, in fixed display order.
func (p Publication) ProvidedLinks() []PublicationLink {
	var links []PublicationLink
	if p.PDF != "" {
		links = append(links, PublicationLink{Label: "PDF", URL: p.PDF})
	}
	if p.ArXiv != "" {
		links = append(links, PublicationLink{Label: "arXiv", URL: p.ArXiv})
	}
	if p.Code != "" {
		links = append(links, PublicationLink{Label: "code", URL: p.Code})
	}
	return links
}

// AuthorsString returns the author list as rendered on the page.
func (p Publication) AuthorsString() string {
	return strings.Join(p.Authors, ", ")
}

// ValidateYear checks that a publication year is plausible.
func ValidateYear(year int) error {
	max := time.Now().Year() + 1
	if year < 1900 || year > max {
		return fmt.Errorf("year %d out of range (1900-%d)", year, max)
	}
	return nil
}

// Validate checks the fields every rendered entry must have.
func (p Publication) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("publication title cannot be empty")
	}
	if len(p.Authors) == 0 {
		return fmt.Errorf("publication %q needs at least one author", p.Title)
	}
	if strings.TrimSpace(p.Venue) == "" {
		return fmt.Errorf("publication %q is missing a venue", p.Title)
	}
	if err := ValidateYear(p.Year); err != nil {
		return fmt.Errorf("publication %q: %w", p.Title, err)
	}
	return nil
}
