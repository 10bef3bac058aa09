// Package output renders API items as styled tables or JSON for the CLI.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const fallbackWidth = 120

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Column describes one table column.
type Column struct {
	Name  string
	Width int
}

// Table is a fixed-width text table with a styled header row.
type Table struct {
	Title   string
	Columns []Column
	Rows    [][]string
	// Color forces styling on or off; when nil the TTY decides.
	Color *bool
}

// Render produces the table as a string, truncating cells to their column
// width and clamping the full row to the terminal width.
func (t *Table) Render() string {
	var sb strings.Builder

	styled := t.styled()
	maxWidth := terminalWidth()

	if t.Title != "" {
		sb.WriteString(t.style(titleStyle, styled).Render(t.Title))
		sb.WriteString("\n")
	}

	var header []string
	for _, col := range t.Columns {
		header = append(header, pad(col.Name, col.Width))
	}
	headerLine := clamp(strings.Join(header, "  "), maxWidth)
	sb.WriteString(t.style(headerStyle, styled).Render(headerLine))
	sb.WriteString("\n")
	sb.WriteString(t.style(dimStyle, styled).Render(clamp(strings.Repeat("─", len([]rune(headerLine))), maxWidth)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		var cells []string
		for i, col := range t.Columns {
			value := ""
			if i < len(row) {
				value = row[i]
			}
			cells = append(cells, pad(value, col.Width))
		}
		sb.WriteString(clamp(strings.Join(cells, "  "), maxWidth))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Print writes the rendered table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

func (t *Table) styled() bool {
	if t.Color != nil {
		return *t.Color
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

func (t *Table) style(s lipgloss.Style, styled bool) lipgloss.Style {
	if styled {
		return s
	}
	return lipgloss.NewStyle()
}

// pad truncates or right-pads a cell to the given width.
func pad(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > width {
		if width > 3 {
			return string(runes[:width-3]) + "..."
		}
		return string(runes[:width])
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func clamp(s string, width int) string {
	runes := []rune(s)
	if width > 0 && len(runes) > width {
		return string(runes[:width])
	}
	return s
}

func terminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return fallbackWidth
}
