package cmd

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
	"github.com/jvanvinkenroye/cinemaquery/output"
)

var (
	cityFlag     string
	latFlag      float64
	lonFlag      float64
	distanceFlag int
)

var cinemaColumns = tableSpec{
	columns: []output.Column{
		{Name: "ID", Width: 8},
		{Name: "Name", Width: 40},
		{Name: "City", Width: 20},
		{Name: "Country", Width: 7},
	},
	row: func(item cineamo.Item) []string {
		return []string{
			strconv.Itoa(item.Int("id")),
			item.Str("name"),
			item.Str("city"),
			item.Str("countryCode"),
		}
	},
}

// cinemasCmd represents the cinemas command
var cinemasCmd = &cobra.Command{
	Use:   "cinemas",
	Short: "List cinemas",
	Long:  `List cinemas, optionally filtered by city, one page at a time or streamed across all pages.`,
	RunE:  runCinemas,
}

// cinemasNearCmd represents the cinemas near command
var cinemasNearCmd = &cobra.Command{
	Use:   "near",
	Short: "Search cinemas near coordinates",
	RunE:  runCinemasNear,
}

// cinemaCmd represents the cinema command
var cinemaCmd = &cobra.Command{
	Use:   "cinema <id>",
	Short: "Show a single cinema by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runCinema,
}

func init() {
	rootCmd.AddCommand(cinemasCmd)
	rootCmd.AddCommand(cinemaCmd)
	cinemasCmd.AddCommand(cinemasNearCmd)

	addListFlags(cinemasCmd)
	cinemasCmd.Flags().StringVar(&cityFlag, "city", "", "filter by city")

	addListFlags(cinemasNearCmd)
	cinemasNearCmd.Flags().Float64Var(&latFlag, "lat", 0, "latitude")
	cinemasNearCmd.Flags().Float64Var(&lonFlag, "lon", 0, "longitude")
	cinemasNearCmd.Flags().IntVar(&distanceFlag, "distance", 0, "distance in meters")
	cinemasNearCmd.MarkFlagRequired("lat")
	cinemasNearCmd.MarkFlagRequired("lon")
	cinemasNearCmd.MarkFlagRequired("distance")
}

func runCinemas(cmd *cobra.Command, args []string) error {
	params := url.Values{}
	if cityFlag != "" {
		params.Set("city", cityFlag)
	}
	return runPagedList(cmd.Context(), "Cinemas", "/cinemas", params, cinemaColumns)
}

func runCinemasNear(cmd *cobra.Command, args []string) error {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latFlag, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lonFlag, 'f', -1, 64))
	params.Set("distance", strconv.Itoa(distanceFlag))

	title := fmt.Sprintf("Cinemas near (%g,%g)", latFlag, lonFlag)
	return runPagedList(cmd.Context(), title, "/cinemas", params, cinemaColumns)
}

// cinemaDetailFields are the fields shown in the single-cinema view.
var cinemaDetailFields = []string{"id", "name", "city", "countryCode", "slug", "ticketSystem", "email"}

func runCinema(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid cinema ID %q", args[0])
	}

	item, err := client.GetJSON(cmd.Context(), fmt.Sprintf("/cinemas/%d", id), nil)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return output.PrintJSON(os.Stdout, item)
	}
	return renderDetail(fmt.Sprintf("Cinema %d", id), item, cinemaDetailFields)
}

// renderDetail prints a field/value table for a single resource.
func renderDetail(title string, item cineamo.Item, fields []string) error {
	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, []string{field, fmt.Sprintf("%v", valueOrEmpty(item, field))})
	}

	table := &output.Table{
		Title: title,
		Columns: []output.Column{
			{Name: "Field", Width: 16},
			{Name: "Value", Width: 60},
		},
		Rows: rows,
	}
	table.Print()
	return nil
}

func valueOrEmpty(item cineamo.Item, key string) any {
	if v, ok := item[key]; ok && v != nil {
		if f, isFloat := v.(float64); isFloat && f == float64(int64(f)) {
			return int64(f)
		}
		return v
	}
	return ""
}
