package interactive

import (
	"context"
	"net/url"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

// Item caps per load, mirroring the non-interactive --limit defaults. The
// API holds 1000+ cinemas; fuzzy filtering over a capped set keeps loads
// snappy.
const (
	cinemaLimit   = 200
	movieLimit    = 200
	showtimeLimit = 100

	loadPerPage = 50
)

type cinemasLoadedMsg struct {
	items []cineamo.Item
}

type moviesLoadedMsg struct {
	items     []cineamo.Item
	forCinema bool
}

type showtimesLoadedMsg struct {
	items []cineamo.Item
	day   time.Time
}

type detailLoadedMsg struct {
	item  cineamo.Item
	kind  string // "cinema" or "movie"
	title string
}

type loadFailedMsg struct {
	err error
}

// loadCinemas streams cinemas, optionally filtered by city and/or by the
// movie currently playing.
func (m *Model) loadCinemas(city string, movieID int) tea.Cmd {
	return func() tea.Msg {
		params := url.Values{}
		if city != "" {
			params.Set("city", city)
		}
		if movieID != 0 {
			params.Set("movieId", strconv.Itoa(movieID))
		}

		items, err := cineamo.Collect(
			m.client.StreamAll(context.Background(), "/cinemas", loadPerPage, params), cinemaLimit)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return cinemasLoadedMsg{items: items}
	}
}

// loadMovies streams movies, either globally (optional query) or for one
// cinema.
func (m *Model) loadMovies(query string, cinemaID int) tea.Cmd {
	return func() tea.Msg {
		path := "/movies"
		if cinemaID != 0 {
			path = "/cinemas/" + strconv.Itoa(cinemaID) + "/movies"
		}

		params := url.Values{}
		if query != "" {
			params.Set("query", query)
		}

		items, err := cineamo.Collect(
			m.client.StreamAll(context.Background(), path, loadPerPage, params), movieLimit)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return moviesLoadedMsg{items: items, forCinema: cinemaID != 0}
	}
}

// loadShowtimes streams one cinema's showings for a day, sorted by start.
func (m *Model) loadShowtimes(cinemaID int, day time.Time) tea.Cmd {
	return func() tea.Msg {
		params := cineamo.ShowingsParams(cinemaID, day)

		items, err := cineamo.Collect(
			m.client.StreamAll(context.Background(), "/showings", loadPerPage, params), showtimeLimit)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		cineamo.SortShowingsByStart(items)
		return showtimesLoadedMsg{items: items, day: day}
	}
}

// loadDetail fetches one resource for the detail view.
func (m *Model) loadDetail(kind string, id int, title string) tea.Cmd {
	return func() tea.Msg {
		path := "/cinemas/" + strconv.Itoa(id)
		if kind == "movie" {
			path = "/movies/" + strconv.Itoa(id)
		}

		item, err := m.client.GetJSON(context.Background(), path, nil)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return detailLoadedMsg{item: item, kind: kind, title: title}
	}
}
