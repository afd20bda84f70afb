package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
)

// ListService handles listing and filtering posts
type ListService struct {
	postRepo ports.PostRepository
}

// NewListService creates a new list service
func NewListService(postRepo ports.PostRepository) *ListService {
	return &ListService{
		postRepo: postRepo,
	}
}

// ListRequest represents a request to list posts
type ListRequest struct {
	CategoryFilter string // Filter by category label or slug (optional)
	SortBy         string // "date", "title" (default: date)
	Reverse        bool   // Reverse sort order
}

// ListResponse represents the response from listing posts
type ListResponse struct {
	Posts []domain.PostHeader
	Total int
}

// Execute lists posts with optional filtering and sorting.
// The default order is newest first.
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	headers, err := s.postRepo.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if req.CategoryFilter != "" {
		headers = filterByCategory(headers, req.CategoryFilter)
	}

	headers = sortHeaders(headers, req.SortBy, req.Reverse)

	return &ListResponse{
		Posts: headers,
		Total: len(headers),
	}, nil
}

func filterByCategory(headers []domain.PostHeader, category string) []domain.PostHeader {
	var filtered []domain.PostHeader
	for _, header := range headers {
		if header.HasCategory(category) {
			filtered = append(filtered, header)
		}
	}
	return filtered
}

func sortHeaders(headers []domain.PostHeader, sortBy string, reverse bool) []domain.PostHeader {
	sort.Slice(headers, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "title":
			less = strings.ToLower(headers[i].Title) < strings.ToLower(headers[j].Title)
		default: // "date", newest first
			less = headers[i].Date > headers[j].Date
		}
		if reverse {
			return !less
		}
		return less
	})
	return headers
}

// SearchRequest represents a search query
type SearchRequest struct {
	Query string
}

// SearchResponse represents search results
type SearchResponse struct {
	Posts []domain.PostHeader
	Total int
}

// Search performs fuzzy search on post titles, slugs, and categories
func (s *ListService) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	headers, err := s.postRepo.ListHeaders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	if strings.TrimSpace(req.Query) == "" {
		return &SearchResponse{
			Posts: headers,
			Total: len(headers),
		}, nil
	}

	matches := fuzzySearch(headers, req.Query)

	return &SearchResponse{
		Posts: matches,
		Total: len(matches),
	}, nil
}

// fuzzyMatch represents a scored match
type fuzzyMatch struct {
	header domain.PostHeader
	score  int
}

func fuzzySearch(headers []domain.PostHeader, query string) []domain.PostHeader {
	query = strings.TrimSpace(query)
	if query == "" {
		return headers
	}

	var matches []fuzzyMatch
	for _, header := range headers {
		score := scoreHeader(header, query)
		if score > 0 {
			matches = append(matches, fuzzyMatch{header: header, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]domain.PostHeader, len(matches))
	for i, m := range matches {
		result[i] = m.header
	}
	return result
}

// scoreHeader ranks exact title matches above prefix matches, prefix
// matches above substring matches, and substring matches above
// subsequence matches.
func scoreHeader(header domain.PostHeader, query string) int {
	q := strings.ToLower(query)
	title := strings.ToLower(header.Title)

	switch {
	case title == q:
		return 100
	case strings.HasPrefix(title, q):
		return 80
	case strings.Contains(title, q):
		return 60
	}

	if strings.Contains(header.Slug, strings.ReplaceAll(q, " ", "-")) {
		return 50
	}

	for _, c := range header.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return 40
		}
	}

	if isSubsequence(q, title) {
		return 20
	}

	return 0
}

// isSubsequence reports whether the letters of needle appear in order
// within haystack, ignoring non-letter characters in the needle.
func isSubsequence(needle, haystack string) bool {
	i := 0
	needleRunes := []rune(needle)
	for _, r := range haystack {
		if i >= len(needleRunes) {
			break
		}
		if !unicode.IsLetter(needleRunes[i]) && !unicode.IsDigit(needleRunes[i]) {
			i++
			continue
		}
		if unicode.ToLower(r) == unicode.ToLower(needleRunes[i]) {
			i++
		}
	}
	return i >= len(needleRunes)
}
