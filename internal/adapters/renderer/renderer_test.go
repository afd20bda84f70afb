package renderer

import (
	"strings"
	"testing"
	"time"

	"folio/internal/core/domain"
)

func newTestRenderer(t *testing.T) *HTMLRenderer {
	t.Helper()

	r, err := NewHTMLRenderer("")
	if err != nil {
		t.Fatalf("NewHTMLRenderer() returned error: %v", err)
	}
	return r
}

func testMeta() *domain.SiteMeta {
	return &domain.SiteMeta{
		Title:   "Jane Doe",
		Author:  "Jane Doe",
		Updated: time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC),
		HasBlog: true,
	}
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		Name:        "Jane Doe",
		Affiliation: "Example University",
		Email:       "jane@example.edu",
		Bio:         "I work on **speech recognition**.",
		Interests:   []string{"speech recognition", "NLP"},
		Links: []domain.ContactLink{
			{Label: "Google Scholar", URL: "https://scholar.google.com/citations?user=abc"},
			{Label: "GitHub", URL: "https://github.com/janedoe"},
		},
		Photo: "photo.jpg",
		CV:    "cv.pdf",
	}
}

func TestHomePage_ProfileContent(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.HomePage(testMeta(), testProfile())
	if err != nil {
		t.Fatalf("HomePage() returned error: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"<h1>Jane Doe</h1>",
		"Example University",
		"<strong>speech recognition</strong>",
		"https://scholar.google.com/citations?user=abc",
		`src="assets/photo.jpg"`,
		`href="assets/cv.pdf"`,
		`href="css/style.css"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("home page missing %q", want)
		}
	}
}

func TestHomePage_EmailCopyScript(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.HomePage(testMeta(), testProfile())
	if err != nil {
		t.Fatalf("HomePage() returned error: %v", err)
	}
	html := string(out)

	// The copy interaction needs the clipboard call, the feedback label,
	// the fixed revert delay, and the selection fallback.
	for _, want := range []string{
		`id="email"`,
		"jane@example.edu",
		"navigator.clipboard.writeText",
		"'Copied!'",
		"2000",
		"selectNodeContents",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("email-copy script missing %q", want)
		}
	}
}

func TestHomePage_NoPhotoMeansNoImgElement(t *testing.T) {
	r := newTestRenderer(t)

	profile := testProfile()
	profile.Photo = ""

	out, err := r.HomePage(testMeta(), profile)
	if err != nil {
		t.Fatalf("HomePage() returned error: %v", err)
	}

	if strings.Contains(string(out), "<img") {
		t.Error("home page should not contain an img element when no photo is set")
	}
}

func TestHomePage_AnalyticsInclude(t *testing.T) {
	r := newTestRenderer(t)

	meta := testMeta()
	out, err := r.HomePage(meta, testProfile())
	if err != nil {
		t.Fatalf("HomePage() returned error: %v", err)
	}
	if strings.Contains(string(out), "googletagmanager") {
		t.Error("analytics include emitted without an analytics id")
	}

	meta.AnalyticsID = "G-TEST123"
	out, err = r.HomePage(meta, testProfile())
	if err != nil {
		t.Fatalf("HomePage() returned error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "googletagmanager.com/gtag/js?id=G-TEST123") {
		t.Error("analytics include missing when analytics id is set")
	}
}

func TestPublicationsPage_OrderAndLinks(t *testing.T) {
	r := newTestRenderer(t)

	pubs := []domain.Publication{
		{
			Title:   "Newest Result",
			Authors: []string{"Jane Doe", "John Smith"},
			Venue:   "Interspeech",
			Year:    2026,
			PDF:     "assets/papers/newest.pdf",
			ArXiv:   "https://arxiv.org/abs/2601.00001",
		},
		{
			Title:   "Older Result",
			Authors: []string{"Jane Doe"},
			Venue:   "ACL",
			Year:    2024,
		},
	}

	out, err := r.PublicationsPage(testMeta(), pubs)
	if err != nil {
		t.Fatalf("PublicationsPage() returned error: %v", err)
	}
	html := string(out)

	// Authored order must be preserved
	first := strings.Index(html, "Newest Result")
	second := strings.Index(html, "Older Result")
	if first < 0 || second < 0 {
		t.Fatal("publications page missing entries")
	}
	if first > second {
		t.Error("publications rendered out of authored order")
	}

	if !strings.Contains(html, "Jane Doe, John Smith") {
		t.Error("author list not rendered")
	}
	if !strings.Contains(html, "https://arxiv.org/abs/2601.00001") {
		t.Error("arXiv link not rendered")
	}

	// The entry without links must not render link markers
	if strings.Count(html, "[PDF]") != 1 {
		t.Errorf("expected exactly one [PDF] link, got %d", strings.Count(html, "[PDF]"))
	}
}

func TestBlogIndexPage_PreviewsAndCategories(t *testing.T) {
	r := newTestRenderer(t)

	posts := []domain.PostBody{
		{
			Header: domain.PostHeader{
				Title: "Viterbi Decoding",
				Date:  "2026-03-01",
				Slug:  "viterbi-decoding",
			},
			Content: strings.Repeat("A long explanation of dynamic programming. ", 20),
		},
	}
	categories := []domain.Category{
		{Slug: "paper-reviews"},
		{Slug: "speech-technology"},
	}

	out, err := r.BlogIndexPage(testMeta(), posts, categories)
	if err != nil {
		t.Fatalf("BlogIndexPage() returned error: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, `href="blog/viterbi-decoding.html"`) {
		t.Error("blog index missing post link")
	}
	if !strings.Contains(html, "March 1, 2026") {
		t.Error("blog index missing display date")
	}
	if !strings.Contains(html, "...") {
		t.Error("long post should render a truncated preview")
	}

	// Category slugs get title-cased display names
	if !strings.Contains(html, ">Paper Reviews</a>") {
		t.Error("blog index missing Paper Reviews category link")
	}
	if !strings.Contains(html, `href="blog/speech-technology.html"`) {
		t.Error("blog index missing category href")
	}
}

func TestPostPage_MarkdownAndMeta(t *testing.T) {
	r := newTestRenderer(t)

	post := &domain.PostBody{
		Header: domain.PostHeader{
			Title:      "Viterbi Decoding",
			Date:       "2026-03-01",
			Categories: []string{"speech technology"},
			Original:   "https://example.blogspot.com/2026/03/viterbi.html",
			Slug:       "viterbi-decoding",
		},
		Content: "## Trellis\n\nSome <em>raw</em> HTML survives.\n",
	}

	out, err := r.PostPage(testMeta(), post)
	if err != nil {
		t.Fatalf("PostPage() returned error: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<h2 id=\"trellis\">Trellis</h2>") {
		t.Error("markdown heading not rendered")
	}
	// Imported posts carry raw HTML that must pass through
	if !strings.Contains(html, "<em>raw</em>") {
		t.Error("raw HTML in content was escaped")
	}
	if !strings.Contains(html, "speech technology") {
		t.Error("categories line not rendered")
	}
	if !strings.Contains(html, "https://example.blogspot.com/2026/03/viterbi.html") {
		t.Error("original post link not rendered")
	}
	// Pages under blog/ resolve the stylesheet one level up
	if !strings.Contains(html, `href="../css/style.css"`) {
		t.Error("post page missing relative stylesheet path")
	}
}

func TestCategoryPage_LinksAreLocal(t *testing.T) {
	r := newTestRenderer(t)

	posts := []domain.PostBody{
		{
			Header: domain.PostHeader{
				Title: "A Review",
				Date:  "2025-11-02",
				Slug:  "a-review",
			},
			Content: "Short body.",
		},
	}

	out, err := r.CategoryPage(testMeta(), domain.Category{Slug: "paper-reviews"}, posts)
	if err != nil {
		t.Fatalf("CategoryPage() returned error: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "<h1>Paper Reviews</h1>") {
		t.Error("category page missing title-cased heading")
	}
	// Category pages live next to the posts, so links are bare filenames
	if !strings.Contains(html, `href="a-review.html"`) {
		t.Error("category page post link should be a bare filename")
	}
	if !strings.Contains(html, "Back to all posts") {
		t.Error("category page missing back link")
	}
}

func TestNav_BlogLinkOnlyWhenBlogExists(t *testing.T) {
	r := newTestRenderer(t)

	meta := testMeta()
	meta.HasBlog = false
	out, err := r.HomePage(meta, testProfile())
	if err != nil {
		t.Fatalf("HomePage() returned error: %v", err)
	}
	if strings.Contains(string(out), `blog.html`) {
		t.Error("nav links to blog.html on a site without posts")
	}

	meta.HasBlog = true
	out, err = r.HomePage(meta, testProfile())
	if err != nil {
		t.Fatalf("HomePage() returned error: %v", err)
	}
	if !strings.Contains(string(out), `href="blog.html"`) {
		t.Error("nav missing blog link on a site with posts")
	}
}

func TestConfiguredDateFormat(t *testing.T) {
	r, err := NewHTMLRenderer("2006-01-02")
	if err != nil {
		t.Fatalf("NewHTMLRenderer() returned error: %v", err)
	}

	posts := []domain.PostBody{
		{
			Header: domain.PostHeader{
				Title: "Viterbi Decoding",
				Date:  "2026-03-01",
				Slug:  "viterbi-decoding",
			},
			Content: "Short body.",
		},
	}

	out, err := r.BlogIndexPage(testMeta(), posts, nil)
	if err != nil {
		t.Fatalf("BlogIndexPage() returned error: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, `<p class="post-date">2026-03-01</p>`) {
		t.Error("configured date format not applied to post dates")
	}
	if strings.Contains(html, "March 1, 2026") {
		t.Error("default date format used despite configured override")
	}
}

func TestStylesheet_LayoutContract(t *testing.T) {
	r := newTestRenderer(t)

	css := string(r.Stylesheet())

	if !strings.Contains(css, "max-width: 800px") {
		t.Error("stylesheet missing 800px max-width rule")
	}
	if !strings.Contains(css, "@media (max-width: 600px)") {
		t.Error("stylesheet missing 600px breakpoint")
	}
	if !strings.Contains(css, `a[href^="http"]::after`) {
		t.Error("stylesheet missing external-link glyph rule")
	}
	if !strings.Contains(css, ".publication:hover") {
		t.Error("stylesheet missing publication hover rule")
	}
}

func TestFooter_AuthorAndYear(t *testing.T) {
	r := newTestRenderer(t)

	out, err := r.HomePage(testMeta(), testProfile())
	if err != nil {
		t.Fatalf("HomePage() returned error: %v", err)
	}
	html := string(out)

	if !strings.Contains(html, "&copy; 2026 Jane Doe") {
		t.Error("footer missing copyright line")
	}
	if !strings.Contains(html, "Last updated: August 2026") {
		t.Error("footer missing last-updated line")
	}
}
