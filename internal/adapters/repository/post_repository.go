package repository

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
	"folio/pkg/workspace"
)

// FilePostRepository stores posts as Markdown files with YAML frontmatter
// under the workspace posts directory. The filename is the slug.
type FilePostRepository struct {
	workspace *workspace.Workspace
	mu        sync.RWMutex
}

// NewFilePostRepository creates a new file-based post repository
func NewFilePostRepository(ws *workspace.Workspace) *FilePostRepository {
	return &FilePostRepository{
		workspace: ws,
	}
}

// Ensure it implements the interface
var _ ports.PostRepository = (*FilePostRepository)(nil)

// ListHeaders returns all post headers
func (r *FilePostRepository) ListHeaders(ctx context.Context) ([]domain.PostHeader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries, err := os.ReadDir(r.workspace.PostsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read posts directory: %w", err)
	}

	var headers []domain.PostHeader
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		path := filepath.Join(r.workspace.PostsPath, entry.Name())
		header, err := r.readHeader(path, entry.Name(), info)
		if err != nil {
			continue
		}
		headers = append(headers, *header)
	}

	return headers, nil
}

// Get retrieves a post by its slug
func (r *FilePostRepository) Get(ctx context.Context, slug string) (*domain.PostBody, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	path := r.workspace.GetPostPath(slug + ".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("post not found: %s", slug)
		}
		return nil, fmt.Errorf("failed to read post: %w", err)
	}

	var header domain.PostHeader
	rest, err := frontmatter.Parse(bytes.NewReader(data), &header)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter in %s: %w", slug+".md", err)
	}

	header.Slug = slug
	header.Filename = slug + ".md"

	return &domain.PostBody{
		Header:  header,
		Content: strings.TrimLeft(string(rest), "\n"),
	}, nil
}

// Save writes a post to disk with its frontmatter block
func (r *FilePostRepository) Save(ctx context.Context, post *domain.PostBody) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meta, err := yaml.Marshal(&post.Header)
	if err != nil {
		return fmt.Errorf("failed to marshal frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(meta)
	buf.WriteString("---\n\n")
	buf.WriteString(post.Content)
	if !strings.HasSuffix(post.Content, "\n") {
		buf.WriteString("\n")
	}

	path := r.workspace.GetPostPath(post.Header.Filename)
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// Exists checks if a post with the given slug exists
func (r *FilePostRepository) Exists(ctx context.Context, slug string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	info, err := os.Stat(r.workspace.GetPostPath(slug + ".md"))
	return err == nil && !info.IsDir()
}

// Delete removes a post by slug
func (r *FilePostRepository) Delete(ctx context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.workspace.GetPostPath(slug + ".md")
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("post not found: %s", slug)
	}
	return os.Remove(path)
}

func (r *FilePostRepository) readHeader(path string, filename string, info os.FileInfo) (*domain.PostHeader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	slug := domain.ParseFilename(filename)

	var header domain.PostHeader
	if _, err := frontmatter.Parse(f, &header); err != nil || header.Title == "" {
		// Fallback for files without valid frontmatter
		return &domain.PostHeader{
			Title:    slug,
			Date:     info.ModTime().Format("2006-01-02"),
			Slug:     slug,
			Filename: filename,
		}, nil
	}

	header.Slug = slug
	header.Filename = filename
	return &header, nil
}
