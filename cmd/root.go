package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"folio/internal/adapters/importer"
	"folio/internal/adapters/renderer"
	"folio/internal/adapters/repository"
	"folio/internal/core/services"
	"folio/pkg/config"
	"folio/pkg/ui"
	"folio/pkg/workspace"
)

var (
	// Global flags
	workspaceDir string

	// Workspace and configuration
	appWorkspace *workspace.Workspace
	appConfig    *config.Config

	// Adapters
	postRepo     *repository.FilePostRepository
	siteRepo     *repository.YAMLSiteRepository
	htmlRenderer *renderer.HTMLRenderer
	blogImporter *importer.BlogspotImporter

	// Services
	buildService       *services.BuildService
	createPostService  *services.CreatePostService
	listService        *services.ListService
	publicationService *services.PublicationService
	importService      *services.ImportService
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio - a static academic portfolio generator",
	Long: ui.StyleTitle.Render("Folio") + " - Academic Portfolio Generator\n\n" +
		"Generate a personal academic site (home, publications, blog) from\n" +
		"plain YAML records and Markdown posts. Content stays hand-editable,\n" +
		"the output is static files you can host anywhere.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workspaceDir, "dir", "d", ".", "Site workspace directory")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pubCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(emailCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp wires the workspace, config, adapters, and services
func initializeApp(cmd *cobra.Command, args []string) error {
	// init and version work without an existing workspace
	switch cmd.Name() {
	case "init", "version", "help", "completion":
		return nil
	}

	// Bootstrap workspace to locate folio.yaml, then rebuild it with the
	// configured output directory.
	bootstrap, err := workspace.New(workspaceDir, "")
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}

	cfg, err := loadConfig(bootstrap.ConfigPath)
	if err != nil {
		return err
	}
	appConfig = cfg

	appWorkspace, err = workspace.New(workspaceDir, cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to resolve workspace: %w", err)
	}

	if !appWorkspace.Exists() {
		fmt.Println(ui.FormatError("Not a folio workspace"))
		fmt.Println(ui.FormatInfo("Run 'folio init' to set one up here"))
		os.Exit(1)
	}

	// Adapters
	postRepo = repository.NewFilePostRepository(appWorkspace)
	siteRepo = repository.NewYAMLSiteRepository(appWorkspace)
	blogImporter = importer.NewBlogspotImporter()

	htmlRenderer, err = renderer.NewHTMLRenderer(appConfig.DisplayDateFormat)
	if err != nil {
		return err
	}

	// Services
	buildService = services.NewBuildService(postRepo, siteRepo, htmlRenderer, appWorkspace, appConfig)
	createPostService = services.NewCreatePostService(postRepo)
	listService = services.NewListService(postRepo)
	publicationService = services.NewPublicationService(siteRepo)
	importService = services.NewImportService(postRepo, appConfig.ImportExcludedLabels, appConfig.ImportCategoryMap)

	return nil
}

// loadConfig reads folio.yaml through viper so every key can also be
// set with a FOLIO_* environment variable.
func loadConfig(path string) (*config.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := config.DefaultConfig()
	v.SetDefault("site_title", defaults.SiteTitle)
	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("domain", defaults.Domain)
	v.SetDefault("analytics_id", defaults.AnalyticsID)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("max_workers", defaults.MaxWorkers)
	v.SetDefault("port", defaults.Port)
	v.SetDefault("watch_debounce_ms", defaults.WatchDebounceMS)
	v.SetDefault("editor", defaults.Editor)
	v.SetDefault("display_date_format", defaults.DisplayDateFormat)
	v.SetDefault("import_excluded_labels", defaults.ImportExcludedLabels)
	v.SetDefault("import_category_map", defaults.ImportCategoryMap)

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing config file means defaults plus environment
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
