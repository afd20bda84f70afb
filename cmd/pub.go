package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"folio/internal/core/domain"
	"folio/internal/core/services"
	"folio/pkg/ui"
)

var (
	pubAuthors []string
	pubVenue   string
	pubYear    int
	pubPDF     string
	pubArXiv   string
	pubCode    string

	pubByYear bool
)

var pubCmd = &cobra.Command{
	Use:   "pub",
	Short: "Manage publications",
}

var pubAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a publication",
	Long:  "Prepend a publication to publications.yaml. New work goes on top.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPubAdd,
}

var pubListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List publications",
	RunE:    runPubList,
}

func init() {
	pubAddCmd.Flags().StringSliceVarP(&pubAuthors, "authors", "a", nil, "Authors in order (comma-separated)")
	pubAddCmd.Flags().StringVarP(&pubVenue, "venue", "v", "", "Venue, e.g. conference or journal")
	pubAddCmd.Flags().IntVarP(&pubYear, "year", "y", 0, "Publication year")
	pubAddCmd.Flags().StringVar(&pubPDF, "pdf", "", "Path or URL to the PDF")
	pubAddCmd.Flags().StringVar(&pubArXiv, "arxiv", "", "arXiv URL")
	pubAddCmd.Flags().StringVar(&pubCode, "code", "", "Code repository URL")
	pubAddCmd.MarkFlagRequired("authors")
	pubAddCmd.MarkFlagRequired("venue")
	pubAddCmd.MarkFlagRequired("year")

	pubListCmd.Flags().BoolVar(&pubByYear, "by-year", false, "Sort newest year first instead of authored order")

	pubCmd.AddCommand(pubAddCmd)
	pubCmd.AddCommand(pubListCmd)
}

func runPubAdd(cmd *cobra.Command, args []string) error {
	title := args[0]
	for _, arg := range args[1:] {
		title += " " + arg
	}

	resp, err := publicationService.Execute(getContext(), services.AddPublicationRequest{
		Publication: domain.Publication{
			Title:   title,
			Authors: pubAuthors,
			Venue:   pubVenue,
			Year:    pubYear,
			PDF:     pubPDF,
			ArXiv:   pubArXiv,
			Code:    pubCode,
		},
	})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to add publication: " + err.Error()))
		return err
	}

	fmt.Println(ui.FormatSuccess("Added publication"))
	fmt.Println(ui.RenderKeyValue("Title", title))
	fmt.Println(ui.RenderKeyValue("Total", strconv.Itoa(resp.Total)))
	return nil
}

func runPubList(cmd *cobra.Command, args []string) error {
	resp, err := publicationService.List(getContext(), services.ListPublicationsRequest{
		SortByYear: pubByYear,
	})
	if err != nil {
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No publications yet"))
		fmt.Println(ui.FormatInfo("Add one with 'folio pub add'"))
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Year", Width: 6, Align: "left"},
		{Header: "Title", Width: 44, Align: "left"},
		{Header: "Venue", Width: 20, Align: "left"},
		{Header: "Links", Width: 16, Align: "left"},
	})

	for _, pub := range resp.Publications {
		links := ""
		for i, link := range pub.ProvidedLinks() {
			if i > 0 {
				links += " "
			}
			links += link.Label
		}
		table.AddRow([]string{
			strconv.Itoa(pub.Year),
			truncate(pub.Title, 44),
			truncate(pub.Venue, 20),
			links,
		})
	}

	fmt.Println(ui.FormatTitle(fmt.Sprintf("Publications (%d)", resp.Total)))
	fmt.Println()
	fmt.Println(table.Render())

	return nil
}
