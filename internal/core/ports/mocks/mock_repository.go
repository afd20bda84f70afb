package mocks

import (
	"context"
	"fmt"
	"sync"

	"folio/internal/core/domain"
)

// MockPostRepository is a mock implementation of the PostRepository interface for testing
type MockPostRepository struct {
	mu         sync.RWMutex
	posts      map[string]*domain.PostBody
	shouldFail bool
	failError  error
}

// NewMockPostRepository creates a new mock post repository
func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		posts: make(map[string]*domain.PostBody),
	}
}

// ListHeaders returns all post headers
func (m *MockPostRepository) ListHeaders(ctx context.Context) ([]domain.PostHeader, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.shouldFail {
		return nil, m.failErr("list failed")
	}

	headers := make([]domain.PostHeader, 0, len(m.posts))
	for _, p := range m.posts {
		headers = append(headers, p.Header)
	}
	return headers, nil
}

// Get retrieves a post by slug
func (m *MockPostRepository) Get(ctx context.Context, slug string) (*domain.PostBody, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	post, ok := m.posts[slug]
	if !ok {
		return nil, fmt.Errorf("post not found: %s", slug)
	}
	return post, nil
}

// Save persists a post to storage
func (m *MockPostRepository) Save(ctx context.Context, post *domain.PostBody) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFail {
		return m.failErr("save failed")
	}

	m.posts[post.Header.Slug] = post
	return nil
}

// Exists checks if a post with the given slug exists
func (m *MockPostRepository) Exists(ctx context.Context, slug string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.posts[slug]
	return ok
}

// Delete removes a post by slug
func (m *MockPostRepository) Delete(ctx context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[slug]; !ok {
		return fmt.Errorf("post not found: %s", slug)
	}

	delete(m.posts, slug)
	return nil
}

// SetShouldFail makes list and save operations return an error
func (m *MockPostRepository) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

func (m *MockPostRepository) failErr(msg string) error {
	if m.failError != nil {
		return m.failError
	}
	return fmt.Errorf("%s", msg)
}

// --- MockSiteRepository ---

// MockSiteRepository is a mock implementation of the SiteRepository interface
type MockSiteRepository struct {
	mu           sync.RWMutex
	profile      *domain.Profile
	publications []domain.Publication
	saveCalls    int
	shouldFail   bool
	failError    error
}

// NewMockSiteRepository creates a new mock site repository with a valid profile
func NewMockSiteRepository() *MockSiteRepository {
	return &MockSiteRepository{
		profile: &domain.Profile{
			Name:        "Test Author",
			Affiliation: "Test University",
			Email:       "test@example.edu",
			Bio:         "Researcher in testing.",
		},
	}
}

// SetProfile replaces the stored profile
func (m *MockSiteRepository) SetProfile(p *domain.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = p
}

// SetPublications replaces the stored publication list
func (m *MockSiteRepository) SetPublications(pubs []domain.Publication) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publications = pubs
}

// LoadProfile reads the profile record
func (m *MockSiteRepository) LoadProfile(ctx context.Context) (*domain.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.shouldFail {
		if m.failError != nil {
			return nil, m.failError
		}
		return nil, fmt.Errorf("load profile failed")
	}
	return m.profile, nil
}

// LoadPublications reads publication entries in authored order
func (m *MockSiteRepository) LoadPublications(ctx context.Context) ([]domain.Publication, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.shouldFail {
		if m.failError != nil {
			return nil, m.failError
		}
		return nil, fmt.Errorf("load publications failed")
	}
	return m.publications, nil
}

// SavePublications writes the full publication list back
func (m *MockSiteRepository) SavePublications(ctx context.Context, pubs []domain.Publication) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.shouldFail {
		if m.failError != nil {
			return m.failError
		}
		return fmt.Errorf("save publications failed")
	}

	m.publications = pubs
	m.saveCalls++
	return nil
}

// GetSaveCalls returns how many times SavePublications was invoked
func (m *MockSiteRepository) GetSaveCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saveCalls
}

// SetShouldFail makes load and save operations return an error
func (m *MockSiteRepository) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

// --- MockRenderer ---

// MockRenderer is a mock implementation of the Renderer interface.
// It records which pages were rendered and returns stub markup.
type MockRenderer struct {
	mu         sync.Mutex
	calls      []string
	shouldFail bool
	failError  error
}

// NewMockRenderer creates a new mock renderer
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{}
}

func (m *MockRenderer) render(name string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	if m.shouldFail {
		if m.failError != nil {
			return nil, m.failError
		}
		return nil, fmt.Errorf("render failed for %s", name)
	}
	return []byte("<html>" + name + "</html>"), nil
}

func (m *MockRenderer) HomePage(meta *domain.SiteMeta, profile *domain.Profile) ([]byte, error) {
	return m.render("home")
}

func (m *MockRenderer) PublicationsPage(meta *domain.SiteMeta, pubs []domain.Publication) ([]byte, error) {
	return m.render("publications")
}

func (m *MockRenderer) BlogIndexPage(meta *domain.SiteMeta, posts []domain.PostBody, categories []domain.Category) ([]byte, error) {
	return m.render("blog")
}

func (m *MockRenderer) PostPage(meta *domain.SiteMeta, post *domain.PostBody) ([]byte, error) {
	return m.render("post:" + post.Header.Slug)
}

func (m *MockRenderer) CategoryPage(meta *domain.SiteMeta, category domain.Category, posts []domain.PostBody) ([]byte, error) {
	return m.render("category:" + category.Slug)
}

func (m *MockRenderer) Stylesheet() []byte {
	return []byte("body { margin: 0; }")
}

// GetCalls returns the rendered page names in call order
func (m *MockRenderer) GetCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}

// SetShouldFail makes every page render return an error
func (m *MockRenderer) SetShouldFail(fail bool, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shouldFail = fail
	m.failError = err
}

// Reset clears recorded calls and failure state
func (m *MockRenderer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.shouldFail = false
	m.failError = nil
}
