package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
	"github.com/jvanvinkenroye/cinemaquery/output"
)

var (
	showtimesCinemaID int
	showtimesDate     string
)

var showtimeColumns = tableSpec{
	columns: []output.Column{
		{Name: "Time", Width: 6},
		{Name: "Movie", Width: 40},
		{Name: "Language", Width: 10},
		{Name: "Original", Width: 8},
	},
	row: func(item cineamo.Item) []string {
		original := ""
		if item.Bool("isOriginalLanguage") {
			original = "OV"
		}
		return []string{
			cineamo.ShowingTime(item),
			item.Str("name"),
			item.Str("language"),
			original,
		}
	},
}

// showtimesCmd represents the showtimes command
var showtimesCmd = &cobra.Command{
	Use:   "showtimes",
	Short: "List showtimes for a cinema on a given day",
	Long: `List the showtimes of one cinema for a calendar day, sorted by
start time. Defaults to today (UTC) when --date is not given.`,
	RunE: runShowtimes,
}

func init() {
	rootCmd.AddCommand(showtimesCmd)

	// Showtimes always stream the full day, so no --page/--all here.
	showtimesCmd.Flags().IntVar(&perPage, "per-page", 10, "items per page")
	showtimesCmd.Flags().IntVar(&limitFlag, "limit", 0, "maximum items (0 = no limit)")
	showtimesCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression, e.g. 'language == \"de\"'")
	showtimesCmd.Flags().IntVar(&showtimesCinemaID, "cinema-id", 0, "cinema ID")
	showtimesCmd.Flags().StringVar(&showtimesDate, "date", "", "date (YYYY-MM-DD, default today)")
	showtimesCmd.MarkFlagRequired("cinema-id")
}

func runShowtimes(cmd *cobra.Command, args []string) error {
	day := time.Now().UTC()
	if showtimesDate != "" {
		parsed, err := time.Parse("2006-01-02", showtimesDate)
		if err != nil {
			return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", showtimesDate)
		}
		day = parsed
	}

	params := cineamo.ShowingsParams(showtimesCinemaID, day)

	items, err := cineamo.Collect(client.StreamAll(cmd.Context(), "/showings", perPage, params), limitFlag)
	if err != nil {
		return err
	}
	cineamo.SortShowingsByStart(items)

	itemFilter, err := compileFilter()
	if err != nil {
		return err
	}
	items, err = itemFilter.Apply(items)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Showtimes for cinema %d on %s", showtimesCinemaID, day.Format("2006-01-02"))
	return renderItems(title, items, nil, nil, showtimeColumns)
}
