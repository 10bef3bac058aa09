package cmd

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jvanvinkenroye/cinemaquery/output"
)

var rawParams []string

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Perform a raw GET against any API path",
	Long: `Perform a GET request against an arbitrary API path and print the
JSON response. Query parameters are passed with repeated -p key=value flags.

Example:
  cinemaquery get /cinemas/100 -p foo=bar`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringArrayVarP(&rawParams, "param", "p", nil, "query param key=value (repeat)")
}

func runGet(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must start with '/'")
	}

	params := url.Values{}
	for _, p := range rawParams {
		key, value, found := strings.Cut(p, "=")
		if !found {
			return fmt.Errorf("-p expects key=value, got %q", p)
		}
		params.Add(key, value)
	}

	value, err := client.GetAny(cmd.Context(), path, params)
	if err != nil {
		return err
	}

	obj, isObject := value.(map[string]any)
	if outputFormat == "json" || !isObject {
		// Arrays, numbers and other non-object bodies pass through as-is.
		return output.PrintJSON(os.Stdout, value)
	}

	// Key/value table for flat fields.
	rows := make([][]string, 0, len(obj))
	for key, val := range obj {
		rows = append(rows, []string{key, fmt.Sprintf("%v", val)})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i][0] < rows[j][0] })

	table := &output.Table{
		Title: "GET " + path,
		Columns: []output.Column{
			{Name: "Key", Width: 24},
			{Name: "Value", Width: 70},
		},
		Rows: rows,
	}
	table.Print()
	return nil
}
