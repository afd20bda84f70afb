package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

var emailCopy bool

var emailCmd = &cobra.Command{
	Use:   "email",
	Short: "Show the contact email from profile.yaml",
	RunE:  runEmail,
}

func init() {
	emailCmd.Flags().BoolVarP(&emailCopy, "copy", "c", false, "Copy the address to the clipboard")
}

func runEmail(cmd *cobra.Command, args []string) error {
	profile, err := siteRepo.LoadProfile(getContext())
	if err != nil {
		return err
	}

	fmt.Println(profile.Email)

	if emailCopy {
		if err := clipboard.WriteAll(profile.Email); err != nil {
			// Headless environments have no clipboard, the address is
			// already printed above
			fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
			return nil
		}
		fmt.Println(ui.FormatSuccess("Copied to clipboard"))
	}

	return nil
}
