package interactive

import (
	"fmt"
	"strings"
	"time"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

// FormatCinemaEntry renders a cinema as a one-line menu entry.
func FormatCinemaEntry(cinema cineamo.Item) string {
	name := cinema.Str("name")
	if name == "" {
		name = "Unknown"
	}
	city := cinema.Str("city")
	country := cinema.Str("countryCode")

	location := country
	if city != "" {
		location = city
		if country != "" {
			location = city + ", " + country
		}
	}
	if location == "" {
		return name
	}
	return fmt.Sprintf("%s  [%s]", name, location)
}

// FormatMovieEntry renders a movie as a one-line menu entry.
func FormatMovieEntry(movie cineamo.Item) string {
	title := movie.Str("title")
	if title == "" {
		title = "Unknown"
	}

	var suffix []string
	if runtime := movie.Int("runtime"); runtime > 0 {
		suffix = append(suffix, fmt.Sprintf("%d min", runtime))
	}
	if release := movie.Str("releaseDate"); release != "" {
		if len(release) > 10 {
			release = release[:10]
		}
		suffix = append(suffix, release)
	}
	if len(suffix) == 0 {
		return title
	}
	return fmt.Sprintf("%s  [%s]", title, strings.Join(suffix, ", "))
}

// FormatShowtimeEntry renders a showing as a one-line menu entry.
func FormatShowtimeEntry(showing cineamo.Item) string {
	name := showing.Str("name")
	if name == "" {
		name = "Unknown"
	}

	lang := showing.Str("language")
	if showing.Bool("isOriginalLanguage") {
		lang = "OV"
	}
	return fmt.Sprintf("%s  %s  [%s]", cineamo.ShowingTime(showing), name, lang)
}

// FormatRuntime renders a runtime in hours and minutes, e.g. "2h 33min (153 min)".
func FormatRuntime(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	hours, mins := minutes/60, minutes%60
	if hours > 0 {
		return fmt.Sprintf("%dh %dmin (%d min)", hours, mins, minutes)
	}
	return fmt.Sprintf("%dmin", mins)
}

// FormatGenres joins the names of a movie's genres list.
func FormatGenres(movie cineamo.Item) string {
	genres, ok := movie["genres"].([]any)
	if !ok {
		return ""
	}

	var names []string
	for _, g := range genres {
		genre, ok := g.(map[string]any)
		if !ok {
			continue
		}
		if name, _ := genre["name"].(string); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// MatchShowingsToMovie keeps the showings that belong to the given movie,
// preferring the cineamoMovieId key and falling back to a case-insensitive
// title match when the movie carries no cineamo ID.
func MatchShowingsToMovie(showings []cineamo.Item, cineamoID, title string) []cineamo.Item {
	var matched []cineamo.Item
	for _, showing := range showings {
		if cineamoID != "" {
			if showing.Str("cineamoMovieId") == cineamoID {
				matched = append(matched, showing)
			}
			continue
		}
		if title != "" && strings.Contains(strings.ToLower(showing.Str("name")), strings.ToLower(title)) {
			matched = append(matched, showing)
		}
	}
	return matched
}

// UpcomingDates returns n consecutive days starting today (UTC).
func UpcomingDates(n int) []time.Time {
	today := time.Now().UTC()
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = today.AddDate(0, 0, i)
	}
	return dates
}
