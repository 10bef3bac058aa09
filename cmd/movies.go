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
	queryFlag            string
	regionFlag           string
	releaseDateStartFlag string
	releaseDateEndFlag   string
	movieTypeFlag        string
)

var movieColumns = tableSpec{
	columns: []output.Column{
		{Name: "ID", Width: 8},
		{Name: "Title", Width: 40},
		{Name: "Release", Width: 12},
		{Name: "Region", Width: 6},
	},
	row: func(item cineamo.Item) []string {
		release := item.Str("releaseDate")
		if len(release) > 10 {
			release = release[:10]
		}
		return []string{
			strconv.Itoa(item.Int("id")),
			item.Str("title"),
			release,
			item.Str("region"),
		}
	},
}

// moviesCmd represents the movies command
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List movies",
	Long:  `List movies with an optional search query, one page at a time or streamed across all pages.`,
	RunE:  runMovies,
}

// moviesSearchCmd represents the movies search command
var moviesSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search movies with advanced filters",
	RunE:  runMoviesSearch,
}

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show a single movie by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovie,
}

func init() {
	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(movieCmd)
	moviesCmd.AddCommand(moviesSearchCmd)

	addListFlags(moviesCmd)
	moviesCmd.Flags().StringVar(&queryFlag, "query", "", "search string")

	addListFlags(moviesSearchCmd)
	moviesSearchCmd.Flags().StringVar(&queryFlag, "query", "", "search string")
	moviesSearchCmd.Flags().StringVar(&regionFlag, "region", "", "region code")
	moviesSearchCmd.Flags().StringVar(&releaseDateStartFlag, "release-date-start", "", "YYYY-MM-DD")
	moviesSearchCmd.Flags().StringVar(&releaseDateEndFlag, "release-date-end", "", "YYYY-MM-DD")
	moviesSearchCmd.Flags().StringVar(&movieTypeFlag, "type", "", "movie type filter")
}

func runMovies(cmd *cobra.Command, args []string) error {
	params := url.Values{}
	if queryFlag != "" {
		params.Set("query", queryFlag)
	}
	return runPagedList(cmd.Context(), "Movies", "/movies", params, movieColumns)
}

func runMoviesSearch(cmd *cobra.Command, args []string) error {
	params := url.Values{}
	if queryFlag != "" {
		params.Set("query", queryFlag)
	}
	if regionFlag != "" {
		params.Set("region", regionFlag)
	}
	if releaseDateStartFlag != "" {
		params.Set("releaseDateStart", releaseDateStartFlag)
	}
	if releaseDateEndFlag != "" {
		params.Set("releaseDateEnd", releaseDateEndFlag)
	}
	if movieTypeFlag != "" {
		params.Set("type", movieTypeFlag)
	}
	return runPagedList(cmd.Context(), "Movies search", "/movies", params, movieColumns)
}

// movieDetailFields are the fields shown in the single-movie view.
var movieDetailFields = []string{"id", "title", "region", "releaseDate", "runtime", "imdbId"}

func runMovie(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid movie ID %q", args[0])
	}

	item, err := client.GetJSON(cmd.Context(), fmt.Sprintf("/movies/%d", id), nil)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		return output.PrintJSON(os.Stdout, item)
	}
	return renderDetail(fmt.Sprintf("Movie %d", id), item, movieDetailFields)
}
