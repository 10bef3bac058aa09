package interactive

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

type state int

const (
	stateMenu state = iota
	statePrompt
	stateLoading
	statePickCinema
	statePickMovie
	statePickAction
	statePickDate
	stateShowtimes
	stateDetail
	stateError
)

// Prompt kinds: what the text input is asking for.
const (
	promptCinemaCity      = "cinema-city"
	promptMovieQuery      = "movie-query"
	promptMovieCinemaCity = "movie-cinema-city"
)

const upcomingDays = 14

// selection is the cinema or movie the user picked from a list.
type selection struct {
	id        int
	name      string
	cineamoID string
}

// Model is the interactive-mode state machine. One screen is active at a
// time; loads run as commands and come back as messages.
type Model struct {
	client *cineamo.Client
	logger zerolog.Logger

	state    state
	returnTo state

	menu    list.Model
	picker  list.Model
	actions list.Model
	dates   list.Model
	input   textinput.Model
	spin    spinner.Model
	shows   table.Model

	promptKind  string
	loadingText string

	width  int
	height int

	cinema *selection
	movie  *selection
	// movieContext marks the "cinemas playing this movie" flow: the next
	// cinema pick leads straight to that movie's showtimes.
	movieContext bool
	// moviesForCinema marks a movie list loaded for one cinema.
	moviesForCinema bool

	detailTitle string
	detailBody  string
	showsTitle  string

	err error
}

// NewModel builds the interactive model. startMode may be "", "cinema" or
// "movie" to jump straight into a workflow.
func NewModel(client *cineamo.Client, logger zerolog.Logger, startMode string) *Model {
	m := &Model{
		client: client,
		logger: logger,
		state:  stateMenu,
		width:  defaultWidth,
		height: defaultHeight,
	}

	m.menu = m.newList("What would you like to do?", []list.Item{
		actionEntry{id: "cinema", label: "Search for a cinema", hint: "browse cinemas, showtimes and programs"},
		actionEntry{id: "movie", label: "Search for a movie", hint: "find a movie and where it plays"},
		actionEntry{id: "quit", label: "Exit", hint: ""},
	})

	m.input = textinput.New()
	m.input.CharLimit = 80

	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = spinnerStyle

	switch startMode {
	case "cinema":
		m.startCinemaWorkflow()
	case "movie":
		m.startMovieWorkflow()
	}

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.state == stateLoading {
		return m.spin.Tick
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case cinemasLoadedMsg:
		return m.cinemasLoaded(msg)

	case moviesLoadedMsg:
		return m.moviesLoaded(msg)

	case showtimesLoadedMsg:
		return m.showtimesLoaded(msg)

	case detailLoadedMsg:
		m.detailTitle = msg.title
		if msg.kind == "movie" {
			m.detailBody = renderMovieDetail(msg.item)
		} else {
			m.detailBody = renderCinemaDetail(msg.item)
		}
		m.state = stateDetail
		return m, nil

	case loadFailedMsg:
		m.logger.Debug().Err(msg.err).Msg("interactive load failed")
		m.err = msg.err
		m.state = stateError
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.updateMenu(msg)
	case statePrompt:
		return m.updatePrompt(msg)
	case statePickCinema, statePickMovie:
		return m.updatePicker(msg)
	case statePickAction:
		return m.updateActions(msg)
	case statePickDate:
		return m.updateDates(msg)
	case stateShowtimes:
		return m.updateShowtimes(msg)
	case stateDetail, stateError:
		if isDismiss(msg) {
			m.state = m.returnTo
			return m, nil
		}
	case stateLoading:
		// Only ctrl+c (handled above) interrupts a load.
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.menu.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter":
			entry, ok := m.menu.SelectedItem().(actionEntry)
			if !ok {
				return m, nil
			}
			switch entry.id {
			case "cinema":
				m.startCinemaWorkflow()
			case "movie":
				m.startMovieWorkflow()
			case "quit":
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		if m.promptKind == promptMovieCinemaCity {
			m.showActionsFor("movie")
		} else {
			m.state = stateMenu
		}
		return m, nil

	case tea.KeyEnter:
		value := m.input.Value()
		switch m.promptKind {
		case promptCinemaCity:
			m.movieContext = false
			return m.startLoading("Loading cinemas...", m.loadCinemas(value, 0))
		case promptMovieQuery:
			m.moviesForCinema = false
			return m.startLoading("Loading movies...", m.loadMovies(value, 0))
		case promptMovieCinemaCity:
			m.movieContext = true
			return m.startLoading("Loading cinemas...", m.loadCinemas(value, m.movie.id))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			m.state = stateMenu
			return m, nil
		case "enter":
			return m.pickSelected()
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *Model) pickSelected() (tea.Model, tea.Cmd) {
	switch m.state {
	case statePickCinema:
		entry, ok := m.picker.SelectedItem().(cinemaEntry)
		if !ok {
			return m, nil
		}
		m.cinema = &selection{id: entry.Int("id"), name: entry.Str("name")}
		if m.movieContext {
			// Cinemas-playing-a-movie flow: go straight to today's
			// showtimes for the picked cinema.
			return m.startLoading("Loading showtimes...", m.loadShowtimes(m.cinema.id, time.Now().UTC()))
		}
		m.showActionsFor("cinema")
		return m, nil

	case statePickMovie:
		entry, ok := m.picker.SelectedItem().(movieEntry)
		if !ok {
			return m, nil
		}
		m.movie = &selection{
			id:        entry.Int("id"),
			name:      entry.Str("title"),
			cineamoID: entry.Str("cineamoId"),
		}
		m.showActionsFor("movie")
		return m, nil
	}
	return m, nil
}

func (m *Model) updateActions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.actions.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			m.state = stateMenu
			return m, nil
		case "enter":
			entry, ok := m.actions.SelectedItem().(actionEntry)
			if !ok {
				return m, nil
			}
			return m.runAction(entry.id)
		}
	}

	var cmd tea.Cmd
	m.actions, cmd = m.actions.Update(msg)
	return m, cmd
}

func (m *Model) runAction(action string) (tea.Model, tea.Cmd) {
	switch action {
	case "showtimes-today":
		return m.startLoading("Loading showtimes...", m.loadShowtimes(m.cinema.id, time.Now().UTC()))

	case "showtimes-date":
		entries := make([]list.Item, 0, upcomingDays)
		for _, day := range UpcomingDates(upcomingDays) {
			entries = append(entries, dateEntry{day: day})
		}
		m.dates = m.newList("Select a date:", entries)
		m.state = statePickDate
		return m, nil

	case "cinema-movies":
		m.moviesForCinema = true
		return m.startLoading("Loading movies...", m.loadMovies("", m.cinema.id))

	case "cinema-details":
		return m.startLoading("Loading details...", m.loadDetail("cinema", m.cinema.id, m.cinema.name))

	case "movie-cinemas":
		m.promptFor(promptMovieCinemaCity)
		return m, nil

	case "movie-details":
		return m.startLoading("Loading details...", m.loadDetail("movie", m.movie.id, m.movie.name))

	case "back":
		m.state = stateMenu
		return m, nil
	}
	return m, nil
}

func (m *Model) updateDates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dates.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc":
			m.showActionsFor("cinema")
			return m, nil
		case "enter":
			entry, ok := m.dates.SelectedItem().(dateEntry)
			if !ok {
				return m, nil
			}
			return m.startLoading("Loading showtimes...", m.loadShowtimes(m.cinema.id, entry.day))
		}
	}

	var cmd tea.Cmd
	m.dates, cmd = m.dates.Update(msg)
	return m, cmd
}

func (m *Model) updateShowtimes(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isDismiss(msg) {
		m.state = m.returnTo
		return m, nil
	}

	var cmd tea.Cmd
	m.shows, cmd = m.shows.Update(msg)
	return m, cmd
}

func (m *Model) cinemasLoaded(msg cinemasLoadedMsg) (tea.Model, tea.Cmd) {
	if len(msg.items) == 0 {
		return m.showEmpty("No cinemas found.")
	}

	entries := make([]list.Item, 0, len(msg.items))
	for _, item := range msg.items {
		entries = append(entries, cinemaEntry{Item: item})
	}

	title := "Select a cinema:"
	if m.movieContext && m.movie != nil {
		title = "Cinemas playing \"" + m.movie.name + "\":"
	}
	m.picker = m.newList(title, entries)
	m.state = statePickCinema
	return m, nil
}

func (m *Model) moviesLoaded(msg moviesLoadedMsg) (tea.Model, tea.Cmd) {
	if len(msg.items) == 0 {
		return m.showEmpty("No movies found.")
	}

	entries := make([]list.Item, 0, len(msg.items))
	for _, item := range msg.items {
		entries = append(entries, movieEntry{Item: item})
	}

	title := "Select a movie:"
	if msg.forCinema && m.cinema != nil {
		title = "Movies at \"" + m.cinema.name + "\":"
	}
	m.picker = m.newList(title, entries)
	m.state = statePickMovie
	return m, nil
}

func (m *Model) showtimesLoaded(msg showtimesLoadedMsg) (tea.Model, tea.Cmd) {
	items := msg.items
	owner := "cinema"
	title := "Showtimes"
	if m.cinema != nil {
		title = "Showtimes for \"" + m.cinema.name + "\" on " + msg.day.Format("2006-01-02")
	}

	if m.movieContext && m.movie != nil {
		items = MatchShowingsToMovie(items, m.movie.cineamoID, m.movie.name)
		title = "\"" + m.movie.name + "\" at " + m.cinema.name + " on " + msg.day.Format("2006-01-02")
		owner = "movie"
		m.movieContext = false
	}

	if len(items) == 0 {
		return m.showEmpty("No showtimes found for " + msg.day.Format("2006-01-02") + ".")
	}

	m.shows = newShowtimesTable(items, m.tableHeight())
	m.showsTitle = title
	m.returnTo = m.actionReturnState(owner)
	m.state = stateShowtimes
	return m, nil
}

// actionReturnState rebuilds the action menu the user came from and returns
// the state to land on when a detail view is dismissed.
func (m *Model) actionReturnState(owner string) state {
	m.buildActions(owner)
	return statePickAction
}

func (m *Model) showEmpty(text string) (tea.Model, tea.Cmd) {
	m.err = nil
	m.detailTitle = ""
	m.detailBody = emptyStyle.Render(text)
	m.returnTo = stateMenu
	if m.cinema != nil && !m.movieContext {
		m.returnTo = m.actionReturnState("cinema")
	}
	m.movieContext = false
	m.state = stateDetail
	return m, nil
}

func (m *Model) startCinemaWorkflow() {
	m.cinema = nil
	m.movie = nil
	m.movieContext = false
	m.promptFor(promptCinemaCity)
}

func (m *Model) startMovieWorkflow() {
	m.cinema = nil
	m.movie = nil
	m.movieContext = false
	m.promptFor(promptMovieQuery)
}

func (m *Model) promptFor(kind string) {
	m.promptKind = kind
	m.input.SetValue("")
	m.input.Focus()
	switch kind {
	case promptCinemaCity, promptMovieCinemaCity:
		m.input.Placeholder = "city (leave empty for all)"
	case promptMovieQuery:
		m.input.Placeholder = "movie title (leave empty for all)"
	}
	m.state = statePrompt
}

func (m *Model) startLoading(text string, load tea.Cmd) (tea.Model, tea.Cmd) {
	m.loadingText = text
	m.state = stateLoading
	return m, tea.Batch(m.spin.Tick, load)
}

func (m *Model) showActionsFor(owner string) {
	m.buildActions(owner)
	m.returnTo = statePickAction
	m.state = statePickAction
}

func (m *Model) buildActions(owner string) {
	if owner == "movie" {
		m.actions = m.newList("Actions for \""+m.movie.name+"\":", []list.Item{
			actionEntry{id: "movie-cinemas", label: "Show cinemas playing this movie"},
			actionEntry{id: "movie-details", label: "Show movie details"},
			actionEntry{id: "back", label: "Back"},
		})
		return
	}
	m.actions = m.newList("Actions for \""+m.cinema.name+"\":", []list.Item{
		actionEntry{id: "showtimes-today", label: "Show today's showtimes"},
		actionEntry{id: "showtimes-date", label: "Show showtimes for another date"},
		actionEntry{id: "cinema-movies", label: "Show movies at this cinema"},
		actionEntry{id: "cinema-details", label: "Show cinema details"},
		actionEntry{id: "back", label: "Back to main menu"},
	})
}

func isDismiss(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "enter", "q":
		return true
	}
	return false
}

func newShowtimesTable(items []cineamo.Item, height int) table.Model {
	columns := []table.Column{
		{Title: "Time", Width: 6},
		{Title: "Movie", Width: 42},
		{Title: "Language", Width: 10},
		{Title: "Original", Width: 8},
	}

	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		original := ""
		if item.Bool("isOriginalLanguage") {
			original = "OV"
		}
		rows = append(rows, table.Row{
			cineamo.ShowingTime(item),
			item.Str("name"),
			item.Str("language"),
			original,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = tableSelectedStyle
	t.SetStyles(s)

	return t
}
