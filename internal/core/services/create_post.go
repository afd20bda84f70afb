package services

import (
	"context"
	"fmt"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
)

// CreatePostService creates new blog posts.
type CreatePostService struct {
	postRepo ports.PostRepository
}

// NewCreatePostService creates a new post creation service
func NewCreatePostService(postRepo ports.PostRepository) *CreatePostService {
	return &CreatePostService{
		postRepo: postRepo,
	}
}

// CreatePostRequest represents a request to create a post
type CreatePostRequest struct {
	Title      string
	Categories []string
	Content    string
}

// CreatePostResponse represents the created post
type CreatePostResponse struct {
	Slug     string
	Filename string
}

// Execute validates the title and writes the new post file
func (s *CreatePostService) Execute(ctx context.Context, req CreatePostRequest) (*CreatePostResponse, error) {
	header, err := domain.NewPostHeader(req.Title, req.Categories)
	if err != nil {
		return nil, err
	}

	if s.postRepo.Exists(ctx, header.Slug) {
		return nil, fmt.Errorf("post already exists: %s", header.Slug)
	}

	content := req.Content
	if content == "" {
		content = "Write your post here.\n"
	}

	post := &domain.PostBody{
		Header:  *header,
		Content: content,
	}

	if err := s.postRepo.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to save post: %w", err)
	}

	return &CreatePostResponse{
		Slug:     header.Slug,
		Filename: header.Filename,
	}, nil
}
