package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

var openRemote bool

var openCmd = &cobra.Command{
	Use:   "open [page]",
	Short: "Open the built site in a browser",
	Long:  "Open the local build's index.html (or a named page like publications.html), or the deployed site with --remote.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runOpen,
}

func init() {
	openCmd.Flags().BoolVarP(&openRemote, "remote", "r", false, "Open the deployed site (base_url) instead of the local build")
}

func runOpen(cmd *cobra.Command, args []string) error {
	if openRemote {
		if appConfig.BaseURL == "" {
			fmt.Println(ui.FormatError("base_url is not set in folio.yaml"))
			return fmt.Errorf("base_url not configured")
		}
		return openInBrowser(appConfig.BaseURL)
	}

	page := "index.html"
	if len(args) > 0 {
		page = args[0]
	}

	target := appWorkspace.GetOutputPath(page)
	if _, err := os.Stat(target); err != nil {
		fmt.Println(ui.FormatError("No build found for " + page))
		fmt.Println(ui.FormatInfo("Run 'folio build' first"))
		return err
	}
	return openInBrowser("file://" + target)
}
