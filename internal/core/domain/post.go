package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// maxSlugLength caps generated slugs so filenames stay manageable.
const maxSlugLength = 100

// PostHeader is the lightweight metadata of a blog post.
// Used for listing operations to avoid loading full content.
type PostHeader struct {
	Title      string   `yaml:"title"`
	Date       string   `yaml:"date"` // YYYY-MM-DD
	Categories []string `yaml:"categories"`
	Original   string   `yaml:"original,omitempty"` // URL of the imported source post
	Slug       string   `yaml:"-"`                  // e.g. "viterbi-decoding"
	Filename   string   `yaml:"-"`                  // e.g. "viterbi-decoding.md"
}

// PostBody is the full post with Markdown content.
type PostBody struct {
	Header  PostHeader
	Content string
}

var (
	slugInvalid   = regexp.MustCompile(`[^a-z0-9]+`)
	titleTag      = regexp.MustCompile(`^\[[^\]]*\]\s*`)
	markupPattern = regexp.MustCompile(`<[^>]+>|[*_` + "`" + `#>\[\]]`)
)

// GenerateSlug creates a URL-friendly slug from a title.
// "Viterbi Decoding, Explained" -> "viterbi-decoding-explained".
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugInvalid.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	return slug
}

// CleanTitle strips a leading category tag like "[Paper Review - NLP] "
// that imported posts carry in their titles.
func CleanTitle(title string) string {
	return strings.TrimSpace(titleTag.ReplaceAllString(title, ""))
}

// CategorySlug converts a category label to its page slug.
// "Paper Review" -> "paper-review".
func CategorySlug(label string) string {
	return GenerateSlug(label)
}

// ParseFilename extracts the slug from a post filename.
func ParseFilename(filename string) string {
	return strings.TrimSuffix(filename, ".md")
}

// ValidateTitle checks if a post title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > 200 {
		return fmt.Errorf("title too long (max 200 characters)")
	}
	if GenerateSlug(title) == "" {
		return fmt.Errorf("title %q produces an empty slug", title)
	}
	return nil
}

// NewPostHeader creates a header for a post authored today.
func NewPostHeader(title string, categories []string) (*PostHeader, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}

	slug := GenerateSlug(title)
	if categories == nil {
		categories = []string{}
	}

	return &PostHeader{
		Title:      title,
		Date:       time.Now().Format("2006-01-02"),
		Categories: categories,
		Slug:       slug,
		Filename:   slug + ".md",
	}, nil
}

// HasCategory checks whether the post carries the given category label.
func (h PostHeader) HasCategory(label string) bool {
	want := CategorySlug(label)
	for _, c := range h.Categories {
		if CategorySlug(c) == want {
			return true
		}
	}
	return false
}

// FormatDate renders the post date in the given layout. An empty layout
// falls back to "January 2, 2006"; unparseable dates pass through
// untouched. Value receiver so templates can call it on list elements.
func (h PostHeader) FormatDate(layout string) string {
	if layout == "" {
		layout = "January 2, 2006"
	}
	t, err := time.Parse("2006-01-02", h.Date)
	if err != nil {
		return h.Date
	}
	return t.Format(layout)
}

// CategoriesString returns categories as a comma-separated string.
func (h PostHeader) CategoriesString() string {
	if len(h.Categories) == 0 {
		return "-"
	}
	return strings.Join(h.Categories, ", ")
}

// Preview returns the first max characters of the content with HTML tags
// and Markdown markers stripped, followed by an ellipsis when truncated.
// Truncation happens on rune boundaries so imported non-ASCII content
// never yields a broken UTF-8 fragment.
func (b *PostBody) Preview(max int) string {
	text := markupPattern.ReplaceAllString(b.Content, "")
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + "..."
}
