package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
)

// copyFeedbackDelayMS is how long the email element shows "Copied!"
// before reverting to the address.
const copyFeedbackDelayMS = 2000

// previewLength is the character budget for post previews on listing pages.
const previewLength = 200

// HTMLRenderer renders site pages from embedded templates.
// Every page method is a pure function of its inputs.
type HTMLRenderer struct {
	templates  *template.Template
	markdown   goldmark.Markdown
	titler     cases.Caser
	css        []byte
	dateFormat string
}

// NewHTMLRenderer parses the embedded templates and builds the Markdown
// pipeline. Imported posts carry raw HTML, so the renderer keeps it.
// dateFormat is the post-date layout; empty means "January 2, 2006".
func NewHTMLRenderer(dateFormat string) (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(siteFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	css, err := siteFS.ReadFile("assets/style.css")
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	return &HTMLRenderer{
		templates:  tmpl,
		markdown:   md,
		titler:     cases.Title(language.English),
		css:        css,
		dateFormat: dateFormat,
	}, nil
}

// Ensure it implements the interface
var _ ports.Renderer = (*HTMLRenderer)(nil)

// pageData is the context handed to every template.
type pageData struct {
	Site        *domain.SiteMeta
	Title       string
	BasePath    string // "" for root pages, "../" for pages under blog/
	Active      string // nav highlight: "home", "publications", "blog"
	CopyDelayMS int

	// PostPrefix is prepended to post links on listing pages. The blog
	// index lives at the root, category pages live inside blog/.
	PostPrefix string

	Profile      *domain.Profile
	BioHTML      template.HTML
	Publications []domain.Publication
	Posts        []postView
	Categories   []domain.Category
	Post         *postView
	Category     domain.Category
}

// postView pairs a post header with its rendered content and preview.
// DisplayDate carries the configured date layout already applied.
type postView struct {
	domain.PostHeader
	HTML        template.HTML
	Preview     string
	DisplayDate string
}

func (r *HTMLRenderer) newPostView(header domain.PostHeader) postView {
	return postView{
		PostHeader:  header,
		DisplayDate: header.FormatDate(r.dateFormat),
	}
}

func (r *HTMLRenderer) newPageData(meta *domain.SiteMeta, title, basePath, active string) pageData {
	return pageData{
		Site:        meta,
		Title:       title,
		BasePath:    basePath,
		Active:      active,
		CopyDelayMS: copyFeedbackDelayMS,
	}
}

func (r *HTMLRenderer) execute(name string, data pageData) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// renderMarkdown converts Markdown to HTML for embedding in a page.
func (r *HTMLRenderer) renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// categoryLabel fills in a display name for categories that only carry a slug.
// "paper-reviews" becomes "Paper Reviews".
func (r *HTMLRenderer) categoryLabel(c domain.Category) domain.Category {
	if c.Label == "" {
		c.Label = r.titler.String(strings.ReplaceAll(c.Slug, "-", " "))
	}
	return c
}

// HomePage renders index.html
func (r *HTMLRenderer) HomePage(meta *domain.SiteMeta, profile *domain.Profile) ([]byte, error) {
	data := r.newPageData(meta, meta.Title, "", "home")
	data.Profile = profile

	if profile.Bio != "" {
		bio, err := r.renderMarkdown(profile.Bio)
		if err != nil {
			return nil, err
		}
		data.BioHTML = bio
	}

	return r.execute("home.tmpl", data)
}

// PublicationsPage renders publications.html in authored order
func (r *HTMLRenderer) PublicationsPage(meta *domain.SiteMeta, pubs []domain.Publication) ([]byte, error) {
	data := r.newPageData(meta, "Publications - "+meta.Title, "", "publications")
	data.Publications = pubs
	return r.execute("publications.tmpl", data)
}

// BlogIndexPage renders blog.html with previews and category links
func (r *HTMLRenderer) BlogIndexPage(meta *domain.SiteMeta, posts []domain.PostBody, categories []domain.Category) ([]byte, error) {
	data := r.newPageData(meta, "Blog - "+meta.Title, "", "blog")
	data.PostPrefix = "blog/"

	for _, post := range posts {
		view := r.newPostView(post.Header)
		view.Preview = post.Preview(previewLength)
		data.Posts = append(data.Posts, view)
	}
	for _, c := range categories {
		data.Categories = append(data.Categories, r.categoryLabel(c))
	}

	return r.execute("blog.tmpl", data)
}

// PostPage renders blog/<slug>.html
func (r *HTMLRenderer) PostPage(meta *domain.SiteMeta, post *domain.PostBody) ([]byte, error) {
	data := r.newPageData(meta, post.Header.Title+" - "+meta.Title, "../", "blog")

	html, err := r.renderMarkdown(post.Content)
	if err != nil {
		return nil, err
	}
	view := r.newPostView(post.Header)
	view.HTML = html
	data.Post = &view

	return r.execute("post.tmpl", data)
}

// CategoryPage renders blog/<category-slug>.html
func (r *HTMLRenderer) CategoryPage(meta *domain.SiteMeta, category domain.Category, posts []domain.PostBody) ([]byte, error) {
	category = r.categoryLabel(category)

	data := r.newPageData(meta, category.Label+" - "+meta.Title, "../", "blog")
	data.Category = category

	for _, post := range posts {
		view := r.newPostView(post.Header)
		view.Preview = post.Preview(previewLength)
		data.Posts = append(data.Posts, view)
	}

	return r.execute("category.tmpl", data)
}

// Stylesheet returns the site stylesheet, emitted as css/style.css
func (r *HTMLRenderer) Stylesheet() []byte {
	return r.css
}
