package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the output directory",
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	if err := appWorkspace.CleanOutput(); err != nil {
		fmt.Println(ui.FormatError("Failed to clean output: " + err.Error()))
		return err
	}
	fmt.Println(ui.FormatSuccess("Cleaned " + appWorkspace.OutputPath))
	return nil
}
