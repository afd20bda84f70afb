package repository

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"folio/internal/core/domain"
	"folio/internal/core/ports"
	"folio/pkg/workspace"
)

// publicationsFile is the on-disk shape of publications.yaml.
// The wrapper key keeps the file self-describing.
type publicationsFile struct {
	Publications []domain.Publication `yaml:"publications"`
}

// YAMLSiteRepository reads the profile and publication records from the
// workspace root.
type YAMLSiteRepository struct {
	workspace *workspace.Workspace
	mu        sync.RWMutex
}

// NewYAMLSiteRepository creates a new YAML-backed site repository
func NewYAMLSiteRepository(ws *workspace.Workspace) *YAMLSiteRepository {
	return &YAMLSiteRepository{
		workspace: ws,
	}
}

// Ensure it implements the interface
var _ ports.SiteRepository = (*YAMLSiteRepository)(nil)

// LoadProfile reads and validates profile.yaml
func (r *YAMLSiteRepository) LoadProfile(ctx context.Context) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.workspace.ProfilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile.yaml not found, run 'folio init' first")
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile.yaml: %w", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return &profile, nil
}

// LoadPublications reads publications.yaml, preserving authored order.
// A missing file means no publications yet, not an error.
func (r *YAMLSiteRepository) LoadPublications(ctx context.Context) ([]domain.Publication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.workspace.PublicationsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read publications: %w", err)
	}

	var file publicationsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse publications.yaml: %w", err)
	}

	for i, pub := range file.Publications {
		if err := pub.Validate(); err != nil {
			return nil, fmt.Errorf("publications.yaml entry %d: %w", i+1, err)
		}
	}

	return file.Publications, nil
}

// SavePublications writes the full publication list back in authored order
func (r *YAMLSiteRepository) SavePublications(ctx context.Context, pubs []domain.Publication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := yaml.Marshal(&publicationsFile{Publications: pubs})
	if err != nil {
		return fmt.Errorf("failed to marshal publications: %w", err)
	}

	if err := os.WriteFile(r.workspace.PublicationsPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write publications.yaml: %w", err)
	}

	return nil
}
