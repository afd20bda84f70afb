package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"folio/internal/core/domain"
	"folio/internal/core/services"
	"folio/pkg/ui"
)

var statsChart string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show content statistics",
	Long:  "Summarize posts per category and year, and publications per year.",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsChart, "chart", "", "Write an HTML chart report to the given file")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	posts, err := listService.Execute(ctx, services.ListRequest{})
	if err != nil {
		return err
	}
	pubs, err := publicationService.List(ctx, services.ListPublicationsRequest{})
	if err != nil {
		return err
	}

	byCategory := make(map[string]int)
	postsByYear := make(map[string]int)
	words := 0
	for _, post := range posts.Posts {
		for _, c := range post.Categories {
			byCategory[domain.CategorySlug(c)]++
		}
		if len(post.Date) >= 4 {
			postsByYear[post.Date[:4]]++
		}
		if body, err := postRepo.Get(ctx, post.Slug); err == nil {
			words += len(strings.Fields(body.Content))
		}
	}

	pubsByYear := make(map[string]int)
	for _, pub := range pubs.Publications {
		pubsByYear[fmt.Sprintf("%d", pub.Year)]++
	}

	fmt.Println(ui.FormatTitle("Content statistics"))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Posts:\t%d\n", posts.Total)
	fmt.Fprintf(w, "Words:\t%d\n", words)
	fmt.Fprintf(w, "Categories:\t%d\n", len(byCategory))
	fmt.Fprintf(w, "Publications:\t%d\n", pubs.Total)
	w.Flush()

	if len(byCategory) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatBold("Posts by category:"))
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, slug := range sortedKeys(byCategory) {
			fmt.Fprintf(w, "  %s\t%d\n", slug, byCategory[slug])
		}
		w.Flush()
	}

	if len(postsByYear) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatBold("Posts by year:"))
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, year := range sortedKeys(postsByYear) {
			fmt.Fprintf(w, "  %s\t%d\n", year, postsByYear[year])
		}
		w.Flush()
	}

	if len(pubsByYear) > 0 {
		fmt.Println()
		fmt.Println(ui.FormatBold("Publications by year:"))
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, year := range sortedKeys(pubsByYear) {
			fmt.Fprintf(w, "  %s\t%d\n", year, pubsByYear[year])
		}
		w.Flush()
	}

	if statsChart != "" {
		if err := writeChartReport(statsChart, byCategory, postsByYear, pubsByYear); err != nil {
			return fmt.Errorf("failed to write chart report: %w", err)
		}
		fmt.Println()
		fmt.Println(ui.FormatSuccess("Chart report written to " + statsChart))
	}

	return nil
}

// writeChartReport renders bar charts of the aggregates into a
// standalone HTML file.
func writeChartReport(path string, byCategory, postsByYear, pubsByYear map[string]int) error {
	page := components.NewPage()
	page.SetPageTitle("Folio content statistics")

	page.AddCharts(
		barChart("Posts by category", byCategory),
		barChart("Posts by year", postsByYear),
		barChart("Publications by year", pubsByYear),
	)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return page.Render(f)
}

func barChart(title string, counts map[string]int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	keys := sortedKeys(counts)
	values := make([]opts.BarData, len(keys))
	for i, k := range keys {
		values[i] = opts.BarData{Value: counts[k]}
	}

	bar.SetXAxis(keys).AddSeries("count", values)
	return bar
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
