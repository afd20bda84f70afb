package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() returned nil")
	}

	if cfg.OutputDir != "public" {
		t.Errorf("expected default OutputDir='public', got %q", cfg.OutputDir)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default Port=8080, got %d", cfg.Port)
	}

	if cfg.WatchDebounceMS != 500 {
		t.Errorf("expected default WatchDebounceMS=500, got %d", cfg.WatchDebounceMS)
	}

	if cfg.MaxWorkers != 4 {
		t.Errorf("expected default MaxWorkers=4, got %d", cfg.MaxWorkers)
	}

	if cfg.Domain != "" {
		t.Errorf("expected default Domain='', got %q", cfg.Domain)
	}

	if cfg.AnalyticsID != "" {
		t.Errorf("expected default AnalyticsID='', got %q", cfg.AnalyticsID)
	}

	if len(cfg.ImportExcludedLabels) == 0 {
		t.Error("expected default ImportExcludedLabels to be non-empty")
	}

	if cfg.ImportCategoryMap["paper review"] != "paper-reviews" {
		t.Errorf("expected 'paper review' to map to 'paper-reviews', got %q",
			cfg.ImportCategoryMap["paper review"])
	}
}

func TestLoad_NonExistentFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/folio.yaml")

	if err != nil {
		t.Fatalf("unexpected error loading non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	if cfg.OutputDir != "public" {
		t.Errorf("expected default OutputDir='public', got %q", cfg.OutputDir)
	}
}

func TestSave_And_Load(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "folio.yaml")

	cfg := &Config{
		SiteTitle:   "Jane Doe",
		BaseURL:     "https://example.com",
		Domain:      "example.com",
		AnalyticsID: "G-TEST123",
		OutputDir:   "dist",
		Port:        9000,
	}

	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loadedCfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loadedCfg.SiteTitle != cfg.SiteTitle {
		t.Errorf("SiteTitle: expected %q, got %q", cfg.SiteTitle, loadedCfg.SiteTitle)
	}

	if loadedCfg.Domain != cfg.Domain {
		t.Errorf("Domain: expected %q, got %q", cfg.Domain, loadedCfg.Domain)
	}

	if loadedCfg.AnalyticsID != cfg.AnalyticsID {
		t.Errorf("AnalyticsID: expected %q, got %q", cfg.AnalyticsID, loadedCfg.AnalyticsID)
	}

	if loadedCfg.OutputDir != "dist" {
		t.Errorf("OutputDir: expected 'dist', got %q", loadedCfg.OutputDir)
	}

	if loadedCfg.Port != 9000 {
		t.Errorf("Port: expected 9000, got %d", loadedCfg.Port)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "folio.yaml")

	yamlContent := `site_title: Jane Doe
domain: example.com
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.OutputDir != "public" {
		t.Errorf("expected default OutputDir='public', got %q", cfg.OutputDir)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default Port=8080, got %d", cfg.Port)
	}

	if cfg.SiteTitle != "Jane Doe" {
		t.Errorf("expected SiteTitle='Jane Doe', got %q", cfg.SiteTitle)
	}
}

func TestLoad_ZeroValues(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "folio.yaml")

	yamlContent := `port: 0
max_workers: -2
watch_debounce_ms: 0
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default Port=8080 for zero value, got %d", cfg.Port)
	}

	if cfg.MaxWorkers != 4 {
		t.Errorf("expected default MaxWorkers=4 for negative value, got %d", cfg.MaxWorkers)
	}

	if cfg.WatchDebounceMS != 500 {
		t.Errorf("expected default WatchDebounceMS=500 for zero value, got %d", cfg.WatchDebounceMS)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "folio.yaml")

	yamlContent := `site_title: [invalid yaml structure
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	_, err := Load(configPath)
	if err == nil {
		t.Fatal("expected error loading invalid YAML, got nil")
	}
}

func TestLoad_CustomCategoryMap(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "folio.yaml")

	yamlContent := `import_category_map:
  essay: essays
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to create test config file: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.ImportCategoryMap["essay"] != "essays" {
		t.Errorf("expected 'essay' to map to 'essays', got %q", cfg.ImportCategoryMap["essay"])
	}
}

func TestSave_CreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nested", "dir", "folio.yaml")

	cfg := DefaultConfig()
	if err := cfg.Save(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}
