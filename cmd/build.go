package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"folio/internal/core/services"
	"folio/pkg/ui"
)

var buildWorkers int

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the static site",
	Long:  "Render every page and copy assets into the output directory.",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().IntVarP(&buildWorkers, "workers", "w", 0, "Concurrent page workers (0 = use config)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	workers := buildWorkers
	if workers <= 0 {
		workers = appConfig.MaxWorkers
	}

	fmt.Println(ui.FormatRocket("Building site..."))

	resp, err := buildService.Execute(getContext(), services.BuildRequest{MaxWorkers: workers})
	if err != nil {
		fmt.Println(ui.FormatError("Build failed: " + err.Error()))
		return err
	}

	fmt.Println(ui.FormatSuccess("Build complete"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Pages", fmt.Sprintf("%d", resp.Pages)))
	fmt.Println(ui.RenderKeyValue("Assets", fmt.Sprintf("%d", resp.Assets)))
	fmt.Println(ui.RenderKeyValue("Output", resp.OutputDir))
	fmt.Println(ui.RenderKeyValue("Took", resp.Duration.Round(time.Millisecond).String()))

	return nil
}
