package cmd

import (
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"folio/internal/core/services"
	"folio/pkg/ui"
)

var editCmd = &cobra.Command{
	Use:   "edit [query]",
	Short: "Pick a post and open it in your editor",
	Long:  "Fuzzy-find a post by title, slug, or category, then open its Markdown file.",
	RunE:  runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	resp, err := listService.Search(getContext(), services.SearchRequest{Query: query})
	if err != nil {
		return err
	}
	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No posts found"))
		return nil
	}

	posts := resp.Posts

	// A single match skips the picker
	idx := 0
	if len(posts) > 1 {
		idx, err = fuzzyfinder.Find(
			posts,
			func(i int) string {
				return fmt.Sprintf("%s  (%s)", posts[i].Title, posts[i].Date)
			},
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				return fmt.Sprintf("Title: %s\nDate: %s\nCategories: %s\nFile: %s",
					posts[i].Title, posts[i].Date, posts[i].CategoriesString(), posts[i].Filename)
			}),
		)
		if err != nil {
			// Cancelled with Esc
			if err == fuzzyfinder.ErrAbort {
				return nil
			}
			return err
		}
	}

	return openInEditor(appWorkspace.GetPostPath(posts[idx].Filename))
}
