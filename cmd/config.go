package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

var configEdit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  "Print the merged configuration from folio.yaml, FOLIO_* environment variables, and defaults.",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVarP(&configEdit, "edit", "e", false, "Open folio.yaml in your editor")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configEdit {
		return openInEditor(appWorkspace.ConfigPath)
	}

	fmt.Println(ui.FormatTitle("Configuration"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("site_title", appConfig.SiteTitle))
	fmt.Println(ui.RenderKeyValue("base_url", appConfig.BaseURL))
	fmt.Println(ui.RenderKeyValue("domain", appConfig.Domain))
	fmt.Println(ui.RenderKeyValue("analytics_id", appConfig.AnalyticsID))
	fmt.Println(ui.RenderKeyValue("output_dir", appConfig.OutputDir))
	fmt.Println(ui.RenderKeyValue("max_workers", strconv.Itoa(appConfig.MaxWorkers)))
	fmt.Println(ui.RenderKeyValue("port", strconv.Itoa(appConfig.Port)))
	fmt.Println(ui.RenderKeyValue("watch_debounce_ms", strconv.Itoa(appConfig.WatchDebounceMS)))
	fmt.Println(ui.RenderKeyValue("editor", appConfig.Editor))
	fmt.Println(ui.RenderKeyValue("display_date_format", appConfig.DisplayDateFormat))
	fmt.Println(ui.RenderKeyValue("import_excluded_labels", strings.Join(appConfig.ImportExcludedLabels, ", ")))
	fmt.Println()
	fmt.Println(ui.FormatMuted("File: " + appWorkspace.ConfigPath))

	return nil
}
