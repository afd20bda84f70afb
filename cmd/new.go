package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/core/services"
	"folio/pkg/ui"
)

var (
	newCategories []string
	newNoEdit     bool
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new blog post",
	Long:  "Create a Markdown post with frontmatter and open it in your editor.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringSliceVarP(&newCategories, "categories", "c", nil, "Categories for the post (comma-separated)")
	newCmd.Flags().BoolVar(&newNoEdit, "no-edit", false, "Skip opening the editor")
}

func runNew(cmd *cobra.Command, args []string) error {
	title := strings.Join(args, " ")

	resp, err := createPostService.Execute(getContext(), services.CreatePostRequest{
		Title:      title,
		Categories: newCategories,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to create post: " + err.Error()))
		return err
	}

	path := appWorkspace.GetPostPath(resp.Filename)

	fmt.Println(ui.FormatSuccess("Created post " + ui.IconPost))
	fmt.Println(ui.RenderKeyValue("Slug", resp.Slug))
	fmt.Println(ui.RenderKeyValue("File", path))

	if newNoEdit {
		return nil
	}
	return openInEditor(path)
}
