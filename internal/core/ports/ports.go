package ports

import (
	"context"

	"folio/internal/core/domain"
)

// PostRepository defines the port for blog post persistence.
type PostRepository interface {
	// ListHeaders returns all post headers (lightweight operation)
	ListHeaders(ctx context.Context) ([]domain.PostHeader, error)

	// Get retrieves a post by slug
	Get(ctx context.Context, slug string) (*domain.PostBody, error)

	// Save persists a post to storage
	Save(ctx context.Context, post *domain.PostBody) error

	// Exists checks if a post with the given slug exists
	Exists(ctx context.Context, slug string) bool

	// Delete removes a post by slug
	Delete(ctx context.Context, slug string) error
}

// SiteRepository defines the port for the profile and publication records.
type SiteRepository interface {
	// LoadProfile reads the profile record
	LoadProfile(ctx context.Context) (*domain.Profile, error)

	// LoadPublications reads publication entries in authored order
	LoadPublications(ctx context.Context) ([]domain.Publication, error)

	// SavePublications writes the full publication list back
	SavePublications(ctx context.Context, pubs []domain.Publication) error
}

// Renderer defines the port for producing the static pages.
// Every method is a pure function of its inputs.
type Renderer interface {
	HomePage(meta *domain.SiteMeta, profile *domain.Profile) ([]byte, error)
	PublicationsPage(meta *domain.SiteMeta, pubs []domain.Publication) ([]byte, error)
	BlogIndexPage(meta *domain.SiteMeta, posts []domain.PostBody, categories []domain.Category) ([]byte, error)
	PostPage(meta *domain.SiteMeta, post *domain.PostBody) ([]byte, error)
	CategoryPage(meta *domain.SiteMeta, category domain.Category, posts []domain.PostBody) ([]byte, error)

	// Stylesheet returns the site stylesheet, emitted as css/style.css
	Stylesheet() []byte
}
