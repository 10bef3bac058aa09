// Package interactive implements the terminal UI for browsing cinemas,
// movies and showtimes. It is a bubbletea program driven by the same
// API client the plain commands use.
package interactive

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

// Run starts the interactive session and blocks until the user quits.
// startMode may be "", "cinema" or "movie".
func Run(client *cineamo.Client, logger zerolog.Logger, startMode string) error {
	model := NewModel(client, logger, startMode)

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}
