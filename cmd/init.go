package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"folio/internal/core/domain"
	"folio/pkg/config"
	"folio/pkg/ui"
	"folio/pkg/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up a new site workspace",
	Long:  "Create the workspace layout: folio.yaml, profile.yaml, publications.yaml, posts/, and assets/.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := workspace.New(workspaceDir, "")
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}

	if ws.Exists() {
		fmt.Println(ui.FormatWarning("Workspace already initialized"))
		fmt.Println(ui.FormatInfo("Found " + ws.ConfigPath))
		return nil
	}

	if err := ws.Initialize(); err != nil {
		return fmt.Errorf("failed to create workspace directories: %w", err)
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(ws.ConfigPath); err != nil {
		return fmt.Errorf("failed to write folio.yaml: %w", err)
	}

	if err := writeStarterProfile(ws.ProfilePath); err != nil {
		return err
	}
	if err := writeStarterPublications(ws.PublicationsPath); err != nil {
		return err
	}
	if err := writeGitignore(ws.RootPath, cfg.OutputDir); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Workspace initialized"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Config", ws.ConfigPath))
	fmt.Println(ui.RenderKeyValue("Profile", ws.ProfilePath))
	fmt.Println(ui.RenderKeyValue("Posts", ws.PostsPath))
	fmt.Println(ui.RenderKeyValue("Assets", ws.AssetsPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Edit profile.yaml, then run 'folio build'"))

	return nil
}

func writeStarterProfile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	profile := domain.Profile{
		Name:        "Your Name",
		Affiliation: "Your Department, Your University",
		Email:       "you@example.edu",
		Bio:         "Write a short bio here. Markdown works, so **emphasis** and [links](https://example.com) are fine.",
		Interests:   []string{"first research interest", "second research interest"},
		Links: []domain.ContactLink{
			{Label: "Google Scholar", URL: "https://scholar.google.com/citations?user=YOURID"},
			{Label: "GitHub", URL: "https://github.com/yourname"},
		},
		// Relative to the assets directory
		Photo: "photo.jpg",
		CV:    "cv.pdf",
	}

	data, err := yaml.Marshal(&profile)
	if err != nil {
		return fmt.Errorf("failed to marshal starter profile: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeStarterPublications(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	starter := "# Publications, newest first. Each entry needs title, authors, venue, year.\n" +
		"# Optional: pdf, arxiv, code.\n" +
		"publications: []\n"

	if err := os.WriteFile(path, []byte(starter), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeGitignore(root, outputDir string) error {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	content := outputDir + "/\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return nil
}
