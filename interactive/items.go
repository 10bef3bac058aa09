package interactive

import (
	"time"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

// cinemaEntry adapts a cinema item to the bubbles list interface.
type cinemaEntry struct {
	cineamo.Item
}

func (e cinemaEntry) Title() string { return FormatCinemaEntry(e.Item) }
func (e cinemaEntry) Description() string {
	return e.Str("slug")
}
func (e cinemaEntry) FilterValue() string {
	return e.Str("name") + " " + e.Str("city")
}

// movieEntry adapts a movie item to the bubbles list interface.
type movieEntry struct {
	cineamo.Item
}

func (e movieEntry) Title() string { return FormatMovieEntry(e.Item) }
func (e movieEntry) Description() string {
	return FormatGenres(e.Item)
}
func (e movieEntry) FilterValue() string {
	return e.Str("title") + " " + e.Str("originalTitle")
}

// actionEntry is a fixed menu choice.
type actionEntry struct {
	id    string
	label string
	hint  string
}

func (e actionEntry) Title() string       { return e.label }
func (e actionEntry) Description() string { return e.hint }
func (e actionEntry) FilterValue() string { return e.label }

// dateEntry is one selectable calendar day.
type dateEntry struct {
	day time.Time
}

func (e dateEntry) Title() string       { return e.day.Format("Monday, 2006-01-02") }
func (e dateEntry) Description() string { return "" }
func (e dateEntry) FilterValue() string { return e.day.Format("2006-01-02") }
