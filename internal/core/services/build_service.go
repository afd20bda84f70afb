package services

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
	"folio/pkg/config"
	"folio/pkg/workspace"
)

// BuildService generates the full static site into the output directory.
type BuildService struct {
	postRepo ports.PostRepository
	siteRepo ports.SiteRepository
	renderer ports.Renderer
	ws       *workspace.Workspace
	cfg      *config.Config
}

// NewBuildService creates a new build service
func NewBuildService(postRepo ports.PostRepository, siteRepo ports.SiteRepository, renderer ports.Renderer, ws *workspace.Workspace, cfg *config.Config) *BuildService {
	return &BuildService{
		postRepo: postRepo,
		siteRepo: siteRepo,
		renderer: renderer,
		ws:       ws,
		cfg:      cfg,
	}
}

// BuildRequest represents a request to build the site
type BuildRequest struct {
	MaxWorkers int // Number of concurrent post page workers
}

// BuildResponse represents the result of a build
type BuildResponse struct {
	Pages     int
	Assets    int
	OutputDir string
	Duration  time.Duration
}

// pageJob is one post page to render and write.
type pageJob struct {
	post domain.PostBody
}

// pageResult reports one rendered post page.
type pageResult struct {
	slug string
	err  error
}

// Execute builds every page and copies assets. The output directory is
// reset first so stale files never survive a rebuild.
func (s *BuildService) Execute(ctx context.Context, req BuildRequest) (*BuildResponse, error) {
	start := time.Now()

	profile, err := s.siteRepo.LoadProfile(ctx)
	if err != nil {
		return nil, err
	}

	pubs, err := s.siteRepo.LoadPublications(ctx)
	if err != nil {
		return nil, err
	}

	posts, err := s.loadPosts(ctx)
	if err != nil {
		return nil, err
	}

	meta := s.siteMeta(profile)
	meta.HasBlog = len(posts) > 0

	if err := s.ws.CleanOutput(); err != nil {
		return nil, fmt.Errorf("failed to clean output directory: %w", err)
	}
	dirs := []string{
		s.ws.OutputPath,
		s.ws.GetOutputPath("css"),
	}
	if meta.HasBlog {
		dirs = append(dirs, s.ws.GetOutputPath("blog"))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	pages := 0

	if err := os.WriteFile(s.ws.GetOutputPath("css", "style.css"), s.renderer.Stylesheet(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write stylesheet: %w", err)
	}

	home, err := s.renderer.HomePage(meta, profile)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(s.ws.GetOutputPath("index.html"), home, 0644); err != nil {
		return nil, fmt.Errorf("failed to write index.html: %w", err)
	}
	pages++

	pubPage, err := s.renderer.PublicationsPage(meta, pubs)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(s.ws.GetOutputPath("publications.html"), pubPage, 0644); err != nil {
		return nil, fmt.Errorf("failed to write publications.html: %w", err)
	}
	pages++

	// A site without posts gets no blog page and no blog nav entry
	if meta.HasBlog {
		categories := collectCategories(posts)

		blogIndex, err := s.renderer.BlogIndexPage(meta, posts, categories)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(s.ws.GetOutputPath("blog.html"), blogIndex, 0644); err != nil {
			return nil, fmt.Errorf("failed to write blog.html: %w", err)
		}
		pages++

		maxWorkers := req.MaxWorkers
		if maxWorkers <= 0 {
			maxWorkers = s.cfg.MaxWorkers
		}
		if err := s.renderPostsConcurrently(ctx, meta, posts, maxWorkers); err != nil {
			return nil, err
		}
		pages += len(posts)

		for _, category := range categories {
			page, err := s.renderer.CategoryPage(meta, category, postsInCategory(posts, category))
			if err != nil {
				return nil, err
			}
			path := s.ws.GetOutputPath("blog", category.Slug+".html")
			if err := os.WriteFile(path, page, 0644); err != nil {
				return nil, fmt.Errorf("failed to write category page %s: %w", category.Slug, err)
			}
			pages++
		}
	}

	assets, err := s.copyAssets()
	if err != nil {
		return nil, err
	}

	if s.cfg.Domain != "" {
		cname := []byte(s.cfg.Domain + "\n")
		if err := os.WriteFile(s.ws.GetOutputPath("CNAME"), cname, 0644); err != nil {
			return nil, fmt.Errorf("failed to write CNAME: %w", err)
		}
	}

	return &BuildResponse{
		Pages:     pages,
		Assets:    assets,
		OutputDir: s.ws.OutputPath,
		Duration:  time.Since(start),
	}, nil
}

// siteMeta assembles the site-wide context. The site title falls back
// to the profile name when unconfigured.
func (s *BuildService) siteMeta(profile *domain.Profile) *domain.SiteMeta {
	title := s.cfg.SiteTitle
	if title == "" {
		title = profile.Name
	}
	return &domain.SiteMeta{
		Title:       title,
		BaseURL:     s.cfg.BaseURL,
		AnalyticsID: s.cfg.AnalyticsID,
		Author:      profile.Name,
		Updated:     time.Now(),
	}
}

// loadPosts reads every post body and sorts newest first.
func (s *BuildService) loadPosts(ctx context.Context) ([]domain.PostBody, error) {
	headers, err := s.postRepo.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	var posts []domain.PostBody
	for _, header := range headers {
		post, err := s.postRepo.Get(ctx, header.Slug)
		if err != nil {
			return nil, fmt.Errorf("failed to load post %s: %w", header.Slug, err)
		}
		posts = append(posts, *post)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Header.Date > posts[j].Header.Date
	})

	return posts, nil
}

// renderPostsConcurrently renders post pages with a worker pool.
func (s *BuildService) renderPostsConcurrently(ctx context.Context, meta *domain.SiteMeta, posts []domain.PostBody, maxWorkers int) error {
	if len(posts) == 0 {
		return nil
	}

	jobs := make(chan pageJob, len(posts))
	results := make(chan pageResult, len(posts))

	var wg sync.WaitGroup
	for i := 0; i < maxWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results <- s.renderPost(ctx, meta, job.post)
			}
		}()
	}

	for _, post := range posts {
		jobs <- pageJob{post: post}
	}
	close(jobs)

	wg.Wait()
	close(results)

	for result := range results {
		if result.err != nil {
			return fmt.Errorf("failed to build post %s: %w", result.slug, result.err)
		}
	}

	return nil
}

func (s *BuildService) renderPost(ctx context.Context, meta *domain.SiteMeta, post domain.PostBody) pageResult {
	select {
	case <-ctx.Done():
		return pageResult{slug: post.Header.Slug, err: ctx.Err()}
	default:
	}

	page, err := s.renderer.PostPage(meta, &post)
	if err != nil {
		return pageResult{slug: post.Header.Slug, err: err}
	}

	path := s.ws.GetOutputPath("blog", post.Header.Slug+".html")
	if err := os.WriteFile(path, page, 0644); err != nil {
		return pageResult{slug: post.Header.Slug, err: err}
	}

	return pageResult{slug: post.Header.Slug}
}

// collectCategories gathers the distinct categories across posts,
// sorted by slug for deterministic output.
func collectCategories(posts []domain.PostBody) []domain.Category {
	seen := make(map[string]bool)
	var categories []domain.Category

	for _, post := range posts {
		for _, label := range post.Header.Categories {
			slug := domain.CategorySlug(label)
			if slug == "" || seen[slug] {
				continue
			}
			seen[slug] = true
			categories = append(categories, domain.Category{Slug: slug})
		}
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Slug < categories[j].Slug
	})

	return categories
}

// postsInCategory filters posts carrying the category, preserving order.
func postsInCategory(posts []domain.PostBody, category domain.Category) []domain.PostBody {
	var filtered []domain.PostBody
	for _, post := range posts {
		if post.Header.HasCategory(category.Slug) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

// copyAssets mirrors the assets directory into the output. A missing
// assets directory is fine, there is just nothing to copy.
func (s *BuildService) copyAssets() (int, error) {
	if _, err := os.Stat(s.ws.AssetsPath); os.IsNotExist(err) {
		return 0, nil
	}

	copied := 0
	err := filepath.WalkDir(s.ws.AssetsPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(s.ws.AssetsPath, path)
		if err != nil {
			return err
		}
		dstPath := s.ws.GetOutputPath("assets", relPath)

		if d.IsDir() {
			return os.MkdirAll(dstPath, 0755)
		}

		if err := copyFile(path, dstPath); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("failed to copy assets: %w", err)
	}

	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	return nil
}
