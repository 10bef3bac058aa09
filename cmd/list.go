package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
	"github.com/jvanvinkenroye/cinemaquery/filter"
	"github.com/jvanvinkenroye/cinemaquery/output"
)

// Shared flags for the paginated list commands.
var (
	perPage    int
	pageNum    int
	listAll    bool
	limitFlag  int
	filterExpr string
)

func addListFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&perPage, "per-page", 10, "items per page")
	cmd.Flags().IntVar(&pageNum, "page", 1, "page number")
	cmd.Flags().BoolVar(&listAll, "all", false, "stream all pages")
	cmd.Flags().IntVar(&limitFlag, "limit", 0, "maximum items when using --all (0 = no limit)")
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression, e.g. 'city == \"Berlin\"'")
}

// tableSpec describes how items of one collection become table rows.
type tableSpec struct {
	columns []output.Column
	row     func(cineamo.Item) []string
}

// runPagedList drives a list command: one page by default, a capped lazy
// walk with --all, optional client-side filtering, table or JSON output.
func runPagedList(ctx context.Context, title, path string, params url.Values, spec tableSpec) error {
	itemFilter, err := compileFilter()
	if err != nil {
		return err
	}

	if listAll {
		items, err := cineamo.Collect(client.StreamAll(ctx, path, perPage, params), limitFlag)
		if err != nil {
			return err
		}
		items, err = itemFilter.Apply(items)
		if err != nil {
			return err
		}
		return renderItems(fmt.Sprintf("%s (total %d)", title, len(items)), items, nil, nil, spec)
	}

	params = cloneValues(params)
	params.Set("per_page", strconv.Itoa(perPage))
	params.Set("page", strconv.Itoa(pageNum))

	page, err := client.ListPage(ctx, path, params)
	if err != nil {
		return err
	}

	items, err := itemFilter.Apply(page.Items)
	if err != nil {
		return err
	}

	pageTitle := title
	if page.PageNumber != nil {
		pageTitle = fmt.Sprintf("%s page %d", title, *page.PageNumber)
		if page.PageCount != nil {
			pageTitle = fmt.Sprintf("%s/%d", pageTitle, *page.PageCount)
		}
	}
	return renderItems(pageTitle, items, page.PageNumber, page.TotalItems, spec)
}

func renderItems(title string, items []cineamo.Item, pageNumber, totalItems *int, spec tableSpec) error {
	if outputFormat == "json" {
		return output.PrintListJSON(os.Stdout, items, pageNumber, totalItems)
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, spec.row(item))
	}

	table := &output.Table{
		Title:   title,
		Columns: spec.columns,
		Rows:    rows,
	}
	if !cfg.Logging.Color {
		off := false
		table.Color = &off
	}
	table.Print()
	return nil
}

func compileFilter() (*filter.ItemFilter, error) {
	if filterExpr == "" {
		return nil, nil
	}
	return filter.Compile(filterExpr)
}

func cloneValues(params url.Values) url.Values {
	cloned := url.Values{}
	for key, values := range params {
		cloned[key] = append([]string(nil), values...)
	}
	return cloned
}
