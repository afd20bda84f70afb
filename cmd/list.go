package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/core/services"
	"folio/pkg/ui"
)

var (
	listCategory string
	listSortBy   string
	listReverse  bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List blog posts",
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category label or slug")
	listCmd.Flags().StringVarP(&listSortBy, "sort", "s", "date", "Sort by: date, title")
	listCmd.Flags().BoolVarP(&listReverse, "reverse", "r", false, "Reverse sort order")
}

func runList(cmd *cobra.Command, args []string) error {
	resp, err := listService.Execute(getContext(), services.ListRequest{
		CategoryFilter: listCategory,
		SortBy:         listSortBy,
		Reverse:        listReverse,
	})
	if err != nil {
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No posts found"))
		if listCategory != "" {
			fmt.Println(ui.FormatInfo("No posts in category '" + listCategory + "'"))
		}
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Date", Width: 12, Align: "left"},
		{Header: "Title", Width: 48, Align: "left"},
		{Header: "Categories", Width: 28, Align: "left"},
	})

	for _, post := range resp.Posts {
		table.AddRow([]string{
			post.Date,
			truncate(post.Title, 48),
			truncate(post.CategoriesString(), 28),
		})
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("Posts (%d)", resp.Total)))
	fmt.Println()
	fmt.Println(table.Render())

	return nil
}
