package services

import (
	"context"
	"fmt"
	"sort"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
)

// PublicationService manages the publication list.
type PublicationService struct {
	siteRepo ports.SiteRepository
}

// NewPublicationService creates a new publication service
func NewPublicationService(siteRepo ports.SiteRepository) *PublicationService {
	return &PublicationService{
		siteRepo: siteRepo,
	}
}

// AddPublicationRequest represents a request to add a publication
type AddPublicationRequest struct {
	Publication domain.Publication
}

// AddPublicationResponse reports the new list size
type AddPublicationResponse struct {
	Total int
}

// Execute validates the entry and prepends it to the list. New work
// goes on top, keeping the conventional reverse-chronological order.
func (s *PublicationService) Execute(ctx context.Context, req AddPublicationRequest) (*AddPublicationResponse, error) {
	if err := req.Publication.Validate(); err != nil {
		return nil, err
	}

	pubs, err := s.siteRepo.LoadPublications(ctx)
	if err != nil {
		return nil, err
	}

	for _, existing := range pubs {
		if existing.Title == req.Publication.Title {
			return nil, fmt.Errorf("publication already exists: %s", req.Publication.Title)
		}
	}

	pubs = append([]domain.Publication{req.Publication}, pubs...)

	if err := s.siteRepo.SavePublications(ctx, pubs); err != nil {
		return nil, err
	}

	return &AddPublicationResponse{Total: len(pubs)}, nil
}

// ListPublicationsRequest represents a request to list publications
type ListPublicationsRequest struct {
	SortByYear bool // Sort newest year first instead of authored order
}

// ListPublicationsResponse represents the publication list
type ListPublicationsResponse struct {
	Publications []domain.Publication
	Total        int
}

// List returns publications, in authored order by default
func (s *PublicationService) List(ctx context.Context, req ListPublicationsRequest) (*ListPublicationsResponse, error) {
	pubs, err := s.siteRepo.LoadPublications(ctx)
	if err != nil {
		return nil, err
	}

	if req.SortByYear {
		sort.SliceStable(pubs, func(i, j int) bool {
			return pubs[i].Year > pubs[j].Year
		})
	}

	return &ListPublicationsResponse{
		Publications: pubs,
		Total:        len(pubs),
	}, nil
}
