package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the site-level settings read from folio.yaml.
// Every key can also be set through FOLIO_* environment variables.
type Config struct {
	// Site
	SiteTitle   string `yaml:"site_title" mapstructure:"site_title"`
	BaseURL     string `yaml:"base_url" mapstructure:"base_url"`
	Domain      string `yaml:"domain" mapstructure:"domain"`
	AnalyticsID string `yaml:"analytics_id" mapstructure:"analytics_id"`

	// Build
	OutputDir  string `yaml:"output_dir" mapstructure:"output_dir"`
	MaxWorkers int    `yaml:"max_workers" mapstructure:"max_workers"`

	// Serve
	Port            int `yaml:"port" mapstructure:"port"`
	WatchDebounceMS int `yaml:"watch_debounce_ms" mapstructure:"watch_debounce_ms"`

	// Authoring
	Editor            string `yaml:"editor" mapstructure:"editor"`
	DisplayDateFormat string `yaml:"display_date_format" mapstructure:"display_date_format"`

	// Import
	ImportExcludedLabels []string          `yaml:"import_excluded_labels" mapstructure:"import_excluded_labels"`
	ImportCategoryMap    map[string]string `yaml:"import_category_map" mapstructure:"import_category_map"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		SiteTitle:         "",
		BaseURL:           "",
		Domain:            "",
		AnalyticsID:       "",
		OutputDir:         "public",
		MaxWorkers:        4,
		Port:              8080,
		WatchDebounceMS:   500,
		Editor:            "",
		DisplayDateFormat: "January 2, 2006",
		ImportExcludedLabels: []string{
			"ai ethics & law",
			"ai ethics",
			"law",
		},
		ImportCategoryMap: map[string]string{
			"speech technology": "speech-technology",
			"book summary":      "book-summaries",
			"paper review":      "paper-reviews",
			"aesthetics":        "aesthetics",
			"algorithm":         "algorithm",
			"research":          "research",
			"tutorial":          "tutorials",
			"data science":      "data-science",
			"nlp":               "nlp",
			"linguistics":       "linguistics",
		},
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// Missing file means an unconfigured workspace; defaults apply
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills in defaults for essential values if missing.
// Called after any unmarshal path, file or environment.
func (c *Config) ApplyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "public"
	}
	if c.MaxWorkers <= 0 {
		c.MaxWorkers = 4
	}
	if c.Port <= 0 {
		c.Port = 8080
	}
	if c.WatchDebounceMS <= 0 {
		c.WatchDebounceMS = 500
	}
	if c.DisplayDateFormat == "" {
		c.DisplayDateFormat = "January 2, 2006"
	}
	if c.ImportCategoryMap == nil {
		c.ImportCategoryMap = make(map[string]string)
	}
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
