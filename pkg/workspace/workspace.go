package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace represents a site directory managed by folio.
// Everything lives under one root: content records, assets, and the
// generated output.
type Workspace struct {
	RootPath   string
	PostsPath  string
	AssetsPath string
	OutputPath string

	ConfigPath       string
	ProfilePath      string
	PublicationsPath string
}

// New creates a Workspace rooted at root. outputDir is the output
// directory name relative to the root (usually "public").
func New(root string, outputDir string) (*Workspace, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace root: %w", err)
	}
	if outputDir == "" {
		outputDir = "public"
	}

	return &Workspace{
		RootPath:         abs,
		PostsPath:        filepath.Join(abs, "posts"),
		AssetsPath:       filepath.Join(abs, "assets"),
		OutputPath:       filepath.Join(abs, outputDir),
		ConfigPath:       filepath.Join(abs, "folio.yaml"),
		ProfilePath:      filepath.Join(abs, "profile.yaml"),
		PublicationsPath: filepath.Join(abs, "publications.yaml"),
	}, nil
}

// Exists checks if the workspace has been initialized.
// The marker is the folio.yaml config file.
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.ConfigPath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Initialize creates the workspace directory structure if it doesn't exist
func (w *Workspace) Initialize() error {
	directories := []string{
		w.RootPath,
		w.PostsPath,
		w.AssetsPath,
		filepath.Join(w.AssetsPath, "papers"),
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetPostPath returns the full path for a post file
func (w *Workspace) GetPostPath(filename string) string {
	return filepath.Join(w.PostsPath, filename)
}

// GetAssetPath returns the full path for an asset file
func (w *Workspace) GetAssetPath(filename string) string {
	return filepath.Join(w.AssetsPath, filename)
}

// GetOutputPath returns the full path for a generated file
func (w *Workspace) GetOutputPath(elem ...string) string {
	parts := append([]string{w.OutputPath}, elem...)
	return filepath.Join(parts...)
}

// CleanOutput removes everything in the output directory so a build
// starts from a blank slate. Missing output directory is not an error.
func (w *Workspace) CleanOutput() error {
	entries, err := os.ReadDir(w.OutputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read output directory: %w", err)
	}

	for _, entry := range entries {
		path := filepath.Join(w.OutputPath, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}

	return nil
}
