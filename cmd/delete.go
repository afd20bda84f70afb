package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"folio/pkg/ui"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete [slug]",
	Aliases: []string{"rm"},
	Short:   "Delete a blog post",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	slug := args[0]
	ctx := getContext()

	if !postRepo.Exists(ctx, slug) {
		fmt.Println(ui.FormatError("No post with slug '" + slug + "'"))
		return fmt.Errorf("post not found: %s", slug)
	}

	if !deleteForce {
		fmt.Printf("Delete post '%s'? [y/N] ", slug)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println(ui.FormatInfo("Cancelled"))
			return nil
		}
	}

	if err := postRepo.Delete(ctx, slug); err != nil {
		fmt.Println(ui.FormatError("Failed to delete: " + err.Error()))
		return err
	}

	fmt.Println(ui.FormatSuccess("Deleted " + slug + ".md"))
	fmt.Println(ui.FormatInfo("Run 'folio build' to refresh the site"))
	return nil
}
