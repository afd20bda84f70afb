package cmd

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"folio/internal/core/services"
	"folio/pkg/ui"
)

var importSourceURL string

var importCmd = &cobra.Command{
	Use:   "import [export.xml]",
	Short: "Import posts from a Blogger export",
	Long: "Parse a Blogger Atom export file and convert live posts into Markdown\n" +
		"posts. Labels are mapped to site categories per folio.yaml, excluded\n" +
		"labels are dropped, and existing slugs are never overwritten.",
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importSourceURL, "source", "s", "", "Blog base URL for original-post links, e.g. https://name.blogspot.com")
}

func runImport(cmd *cobra.Command, args []string) error {
	entries, err := blogImporter.ParseFile(args[0])
	if err != nil {
		fmt.Println(ui.FormatError("Failed to parse export: " + err.Error()))
		return err
	}

	fmt.Println(ui.FormatInfo(fmt.Sprintf("Found %d live posts in export", len(entries))))

	resp, err := importService.Execute(getContext(), services.ImportRequest{
		Entries:   entries,
		SourceURL: importSourceURL,
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Import complete"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Imported", strconv.Itoa(resp.Imported)))
	fmt.Println(ui.RenderKeyValue("Skipped", strconv.Itoa(resp.Skipped)))
	fmt.Println(ui.RenderKeyValue("Excluded", strconv.Itoa(resp.Excluded)))

	if len(resp.Categories) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatBold("By category:"))

		slugs := make([]string, 0, len(resp.Categories))
		for slug := range resp.Categories {
			slugs = append(slugs, slug)
		}
		sort.Strings(slugs)

		for _, slug := range slugs {
			fmt.Println(ui.RenderKeyValue(slug, strconv.Itoa(resp.Categories[slug])))
		}
	}

	return nil
}
