package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
)

// ImportService converts external blog export entries into posts.
type ImportService struct {
	postRepo       ports.PostRepository
	excludedLabels []string
	categoryMap    map[string]string
}

// NewImportService creates a new import service. excludedLabels and
// categoryMap come from the workspace config.
func NewImportService(postRepo ports.PostRepository, excludedLabels []string, categoryMap map[string]string) *ImportService {
	return &ImportService{
		postRepo:       postRepo,
		excludedLabels: excludedLabels,
		categoryMap:    categoryMap,
	}
}

// ImportRequest represents a batch of parsed feed entries
type ImportRequest struct {
	Entries []domain.FeedEntry
	// SourceURL is the origin of the export, e.g. the blogspot host.
	// When set, each post records a link back to its original.
	SourceURL string
}

// ImportResponse summarizes the import
type ImportResponse struct {
	Imported   int
	Skipped    int // already-existing slugs
	Excluded   int // entries dropped by label exclusion
	Categories map[string]int
}

// Execute imports entries as Markdown posts. Entries whose labels match
// an exclusion are dropped, and an entry whose slug already exists is
// skipped rather than overwritten.
func (s *ImportService) Execute(ctx context.Context, req ImportRequest) (*ImportResponse, error) {
	resp := &ImportResponse{
		Categories: make(map[string]int),
	}

	for _, entry := range req.Entries {
		if s.isExcluded(entry.Labels) {
			resp.Excluded++
			continue
		}

		title := domain.CleanTitle(entry.Title)
		if title == "" {
			title = "Untitled"
		}

		slug := domain.GenerateSlug(title)
		if slug == "" || s.postRepo.Exists(ctx, slug) {
			resp.Skipped++
			continue
		}

		category := s.mapCategory(entry.Labels)

		header := domain.PostHeader{
			Title:      title,
			Date:       entry.Published.Format("2006-01-02"),
			Categories: []string{category},
			Slug:       slug,
			Filename:   slug + ".md",
		}
		if req.SourceURL != "" && entry.Path != "" {
			header.Original = strings.TrimSuffix(req.SourceURL, "/") + entry.Path
		}

		post := &domain.PostBody{
			Header:  header,
			Content: entry.Content,
		}

		if err := s.postRepo.Save(ctx, post); err != nil {
			return resp, fmt.Errorf("failed to save imported post %s: %w", slug, err)
		}

		resp.Imported++
		resp.Categories[category]++
	}

	return resp, nil
}

// isExcluded checks entry labels against the configured exclusions.
// Matching is case-insensitive substring, so "AI Ethics & Law 101"
// trips the "ai ethics" exclusion.
func (s *ImportService) isExcluded(labels []string) bool {
	for _, label := range labels {
		lower := strings.ToLower(label)
		for _, excluded := range s.excludedLabels {
			if strings.Contains(lower, excluded) {
				return true
			}
		}
	}
	return false
}

// mapCategory resolves entry labels to a category slug. Map keys are
// checked in sorted order so the outcome never depends on map
// iteration. Unmatched entries land in "general".
func (s *ImportService) mapCategory(labels []string) string {
	keys := make([]string, 0, len(s.categoryMap))
	for k := range s.categoryMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, label := range labels {
		lower := strings.ToLower(label)
		for _, key := range keys {
			if strings.Contains(lower, key) {
				return s.categoryMap[key]
			}
		}
	}

	return "general"
}
