package services

import (
	"context"
	"testing"

	"folio/internal/core/domain"
	"folio/internal/core/ports/mocks"
)

func seedPosts(t *testing.T, repo *mocks.MockPostRepository) {
	t.Helper()
	ctx := context.Background()

	posts := []struct {
		title      string
		date       string
		categories []string
	}{
		{"Alpha Post", "2026-01-15", []string{"nlp"}},
		{"Beta Post", "2026-03-01", []string{"paper-reviews"}},
		{"Gamma Post", "2025-12-01", []string{"nlp", "research"}},
	}

	for _, p := range posts {
		slug := domain.GenerateSlug(p.title)
		err := repo.Save(ctx, &domain.PostBody{
			Header: domain.PostHeader{
				Title:      p.title,
				Date:       p.date,
				Categories: p.categories,
				Slug:       slug,
				Filename:   slug + ".md",
			},
			Content: "body",
		})
		if err != nil {
			t.Fatalf("failed to seed post: %v", err)
		}
	}
}

func TestListService_DefaultNewestFirst(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	seedPosts(t, repo)
	svc := NewListService(repo)

	resp, err := svc.Execute(context.Background(), ListRequest{})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if resp.Total != 3 {
		t.Fatalf("Total = %d, want 3", resp.Total)
	}

	want := []string{"Beta Post", "Alpha Post", "Gamma Post"}
	for i, header := range resp.Posts {
		if header.Title != want[i] {
			t.Errorf("position %d = %q, want %q", i, header.Title, want[i])
		}
	}
}

func TestListService_SortByTitle(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	seedPosts(t, repo)
	svc := NewListService(repo)

	resp, err := svc.Execute(context.Background(), ListRequest{SortBy: "title"})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	want := []string{"Alpha Post", "Beta Post", "Gamma Post"}
	for i, header := range resp.Posts {
		if header.Title != want[i] {
			t.Errorf("position %d = %q, want %q", i, header.Title, want[i])
		}
	}
}

func TestListService_CategoryFilter(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	seedPosts(t, repo)
	svc := NewListService(repo)

	resp, err := svc.Execute(context.Background(), ListRequest{CategoryFilter: "nlp"})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if resp.Total != 2 {
		t.Fatalf("Total = %d, want 2", resp.Total)
	}
	for _, header := range resp.Posts {
		if !header.HasCategory("nlp") {
			t.Errorf("post %q should carry the nlp category", header.Title)
		}
	}
}

func TestListService_Search(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	seedPosts(t, repo)
	svc := NewListService(repo)
	ctx := context.Background()

	tests := []struct {
		name      string
		query     string
		wantFirst string
		wantTotal int
	}{
		{"exact title", "alpha post", "Alpha Post", 1},
		{"prefix", "beta", "Beta Post", 1},
		{"category", "research", "Gamma Post", 1},
		{"empty returns all", "", "", 3},
		{"no match", "zzzzqqq", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Search(ctx, SearchRequest{Query: tt.query})
			if err != nil {
				t.Fatalf("Search() returned error: %v", err)
			}
			if resp.Total != tt.wantTotal {
				t.Fatalf("Total = %d, want %d", resp.Total, tt.wantTotal)
			}
			if tt.wantFirst != "" && resp.Posts[0].Title != tt.wantFirst {
				t.Errorf("first result = %q, want %q", resp.Posts[0].Title, tt.wantFirst)
			}
		})
	}
}

func TestIsSubsequence(t *testing.T) {
	tests := []struct {
		needle   string
		haystack string
		want     bool
	}{
		{"vd", "viterbi decoding", true},
		{"decode", "viterbi decoding", false},
		{"vtb", "viterbi", true},
		{"xyz", "viterbi", false},
	}

	for _, tt := range tests {
		if got := isSubsequence(tt.needle, tt.haystack); got != tt.want {
			t.Errorf("isSubsequence(%q, %q) = %v, want %v", tt.needle, tt.haystack, got, tt.want)
		}
	}
}
