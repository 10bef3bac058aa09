package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jvanvinkenroye/cinemaquery/interactive"
)

var startMode string

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Browse cinemas, movies and showtimes in a menu-driven session",
	Long: `Start an interactive session with fuzzy-filterable menus for cinemas,
movies, showtimes and details. Requires a terminal.

Use --type to jump straight into a workflow:
  cinemaquery interactive --type cinema
  cinemaquery interactive --type movie`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)

	interactiveCmd.Flags().StringVarP(&startMode, "type", "t", "", "start directly in a workflow (cinema or movie)")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("interactive mode requires a terminal")
	}

	switch startMode {
	case "", "cinema", "movie":
	default:
		return fmt.Errorf("invalid --type %q (must be cinema or movie)", startMode)
	}

	logger.Debug().Str("type", startMode).Msg("starting interactive session")

	return interactive.Run(client, logger, startMode)
}
