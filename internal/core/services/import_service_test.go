package services

import (
	"context"
	"testing"
	"time"

	"folio/internal/core/domain"
	"folio/internal/core/ports/mocks"
	"folio/pkg/config"
)

func newImportService(repo *mocks.MockPostRepository) *ImportService {
	cfg := config.DefaultConfig()
	return NewImportService(repo, cfg.ImportExcludedLabels, cfg.ImportCategoryMap)
}

func feedEntry(title string, labels []string) domain.FeedEntry {
	return domain.FeedEntry{
		Title:     title,
		Published: time.Date(2021, time.June, 15, 12, 0, 0, 0, time.UTC),
		Content:   "<p>Imported content.</p>",
		Labels:    labels,
		Path:      "/2021/06/" + domain.GenerateSlug(title) + ".html",
	}
}

func TestImportService_ImportsEntries(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := newImportService(repo)
	ctx := context.Background()

	resp, err := svc.Execute(ctx, ImportRequest{
		Entries: []domain.FeedEntry{
			feedEntry("A Speech Paper", []string{"paper review", "speech technology"}),
			feedEntry("An Uncategorized Note", nil),
		},
		SourceURL: "https://example.blogspot.com",
	})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if resp.Imported != 2 {
		t.Errorf("Imported = %d, want 2", resp.Imported)
	}

	post, err := repo.Get(ctx, "a-speech-paper")
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if post.Header.Date != "2021-06-15" {
		t.Errorf("Date = %q, want %q", post.Header.Date, "2021-06-15")
	}
	if post.Header.Original != "https://example.blogspot.com/2021/06/a-speech-paper.html" {
		t.Errorf("Original = %q, want source link", post.Header.Original)
	}
	if post.Content != "<p>Imported content.</p>" {
		t.Errorf("Content = %q, raw HTML should be kept", post.Content)
	}
}

func TestImportService_CategoryMapping(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{"paper review maps to plural slug", []string{"paper review"}, "paper-reviews"},
		{"book summary", []string{"book summary"}, "book-summaries"},
		{"substring match", []string{"Paper Review - NLP"}, "paper-reviews"},
		{"no labels", nil, "general"},
		{"unmapped label", []string{"gardening"}, "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockPostRepository()
			svc := newImportService(repo)
			ctx := context.Background()

			resp, err := svc.Execute(ctx, ImportRequest{
				Entries: []domain.FeedEntry{feedEntry("Some Post", tt.labels)},
			})
			if err != nil {
				t.Fatalf("Execute() returned error: %v", err)
			}
			if resp.Categories[tt.want] != 1 {
				t.Errorf("Categories = %v, want %q counted once", resp.Categories, tt.want)
			}

			post, err := repo.Get(ctx, "some-post")
			if err != nil {
				t.Fatalf("Get() returned error: %v", err)
			}
			if len(post.Header.Categories) != 1 || post.Header.Categories[0] != tt.want {
				t.Errorf("post categories = %v, want [%s]", post.Header.Categories, tt.want)
			}
		})
	}
}

func TestImportService_ExcludesLabels(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := newImportService(repo)
	ctx := context.Background()

	resp, err := svc.Execute(ctx, ImportRequest{
		Entries: []domain.FeedEntry{
			feedEntry("Kept Post", []string{"nlp"}),
			feedEntry("Dropped Post", []string{"AI Ethics & Law"}),
			feedEntry("Also Dropped", []string{"thoughts on law"}),
		},
	})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if resp.Imported != 1 {
		t.Errorf("Imported = %d, want 1", resp.Imported)
	}
	if resp.Excluded != 2 {
		t.Errorf("Excluded = %d, want 2", resp.Excluded)
	}
	if repo.Exists(ctx, "dropped-post") {
		t.Error("excluded post was saved")
	}
}

func TestImportService_CleansTitleTags(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := newImportService(repo)
	ctx := context.Background()

	_, err := svc.Execute(ctx, ImportRequest{
		Entries: []domain.FeedEntry{
			feedEntry("[Paper Review - NLP] Attention Is All You Need", []string{"paper review"}),
		},
	})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	post, err := repo.Get(ctx, "attention-is-all-you-need")
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if post.Header.Title != "Attention Is All You Need" {
		t.Errorf("Title = %q, tag prefix should be stripped", post.Header.Title)
	}
}

func TestImportService_SkipsExistingSlugs(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := newImportService(repo)
	ctx := context.Background()

	existing := &domain.PostBody{
		Header: domain.PostHeader{
			Title:    "Existing Post",
			Date:     "2020-01-01",
			Slug:     "existing-post",
			Filename: "existing-post.md",
		},
		Content: "hand-written content",
	}
	if err := repo.Save(ctx, existing); err != nil {
		t.Fatalf("failed to seed post: %v", err)
	}

	resp, err := svc.Execute(ctx, ImportRequest{
		Entries: []domain.FeedEntry{feedEntry("Existing Post", []string{"nlp"})},
	})
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if resp.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", resp.Skipped)
	}

	post, err := repo.Get(ctx, "existing-post")
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if post.Content != "hand-written content" {
		t.Error("existing post was overwritten by import")
	}
}

func TestImportService_EntryWithoutPathHasNoOriginal(t *testing.T) {
	repo := mocks.NewMockPostRepository()
	svc := newImportService(repo)
	ctx := context.Background()

	entry := feedEntry("No Path Entry", []string{"nlp"})
	entry.Path = ""

	if _, err := svc.Execute(ctx, ImportRequest{
		Entries:   []domain.FeedEntry{entry},
		SourceURL: "https://example.blogspot.com",
	}); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	post, err := repo.Get(ctx, "no-path-entry")
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if post.Header.Original != "" {
		t.Errorf("Original = %q, want empty for entry without a path", post.Header.Original)
	}
}
