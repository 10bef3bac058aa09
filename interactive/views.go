package interactive

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	listChromeHeight = 6
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	promptStyle = lipgloss.NewStyle().
			Padding(1, 2)

	bodyStyle = lipgloss.NewStyle().
			Padding(1, 2)

	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true)

	tableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.state {
	case stateMenu:
		return m.menu.View()

	case statePrompt:
		return m.promptView()

	case stateLoading:
		return promptStyle.Render(m.spin.View() + " " + m.loadingText)

	case statePickCinema, statePickMovie:
		return m.picker.View()

	case statePickAction:
		return m.actions.View()

	case statePickDate:
		return m.dates.View()

	case stateShowtimes:
		var b strings.Builder
		b.WriteString(titleStyle.Render(m.showsTitle))
		b.WriteString("\n\n")
		b.WriteString(m.shows.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll · esc back"))
		return bodyStyle.Render(b.String())

	case stateDetail:
		var b strings.Builder
		if m.detailTitle != "" {
			b.WriteString(titleStyle.Render(m.detailTitle))
			b.WriteString("\n\n")
		}
		b.WriteString(m.detailBody)
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc back"))
		return bodyStyle.Render(b.String())

	case stateError:
		var b strings.Builder
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("esc back"))
		return bodyStyle.Render(b.String())
	}

	return ""
}

func (m *Model) promptView() string {
	label := "Enter a city to search for cinemas:"
	if m.promptKind == promptMovieQuery {
		label = "Enter a movie title to search for:"
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter confirm · esc back"))
	return promptStyle.Render(b.String())
}

func (m *Model) newList(title string, entries []list.Item) list.Model {
	l := list.New(entries, list.NewDefaultDelegate(), m.width, m.listHeight())
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	return l
}

func (m *Model) resizeLists() {
	h := m.listHeight()
	m.menu.SetSize(m.width, h)
	m.picker.SetSize(m.width, h)
	m.actions.SetSize(m.width, h)
	m.dates.SetSize(m.width, h)
	m.shows.SetHeight(m.tableHeight())
}

func (m *Model) listHeight() int {
	h := m.height - 2
	if h < 5 {
		h = 5
	}
	return h
}

func (m *Model) tableHeight() int {
	h := m.height - listChromeHeight
	if h < 5 {
		h = 5
	}
	return h
}

func renderCinemaDetail(item cineamo.Item) string {
	var b strings.Builder
	writeField(&b, "Name", item.Str("name"))
	writeField(&b, "Street", item.Str("street"))
	writeField(&b, "City", item.Str("city"))
	writeField(&b, "Zipcode", item.Str("zipcode"))
	writeField(&b, "Country", item.Str("country"))
	writeField(&b, "Phone", item.Str("phone"))
	writeField(&b, "E-Mail", item.Str("email"))
	writeField(&b, "Website", item.Str("website"))
	return strings.TrimRight(b.String(), "\n")
}

func renderMovieDetail(item cineamo.Item) string {
	var b strings.Builder
	writeField(&b, "Title", item.Str("title"))
	writeField(&b, "Original title", item.Str("originalTitle"))
	writeField(&b, "Release date", item.Str("releaseDate"))
	writeField(&b, "Runtime", FormatRuntime(item.Int("runtime")))
	writeField(&b, "Genres", FormatGenres(item))
	writeField(&b, "Region", item.Str("region"))
	writeField(&b, "Overview", item.Str("overview"))
	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(labelStyle.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}
