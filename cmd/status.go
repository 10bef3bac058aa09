package cmd

import (
	"fmt"
	"net/url"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Test connectivity to the Cineamo API",
	Long:  `Probe the main API collections and display their total resource counts.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", client.BaseURL())

	collections := []string{"/cinemas", "/movies", "/showings"}
	totals := make(map[string]int, len(collections))
	var mu sync.Mutex

	// Three independent single-page probes; per_page=1 keeps them cheap.
	g, ctx := errgroup.WithContext(cmd.Context())
	for _, path := range collections {
		g.Go(func() error {
			params := url.Values{}
			params.Set("per_page", "1")
			params.Set("page", "1")

			page, err := client.ListPage(ctx, path, params)
			if err != nil {
				return fmt.Errorf("probing %s: %w", path, err)
			}

			total := -1
			if page.TotalItems != nil {
				total = *page.TotalItems
			}
			mu.Lock()
			totals[path] = total
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println("✓ Connection successful!")
	fmt.Println()
	fmt.Println("API statistics:")
	for _, path := range collections {
		if totals[path] < 0 {
			fmt.Printf("- %-10s total unknown\n", path)
			continue
		}
		fmt.Printf("- %-10s %d\n", path, totals[path])
	}
	return nil
}
