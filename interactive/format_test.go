package interactive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

func TestFormatCinemaEntry(t *testing.T) {
	tests := []struct {
		name   string
		cinema cineamo.Item
		want   string
	}{
		{
			name:   "name city and country",
			cinema: cineamo.Item{"name": "Lichtspielhaus", "city": "Berlin", "countryCode": "DE"},
			want:   "Lichtspielhaus  [Berlin, DE]",
		},
		{
			name:   "city only",
			cinema: cineamo.Item{"name": "Kino am Markt", "city": "Jena"},
			want:   "Kino am Markt  [Jena]",
		},
		{
			name:   "country only",
			cinema: cineamo.Item{"name": "Cinema Paradiso", "countryCode": "IT"},
			want:   "Cinema Paradiso  [IT]",
		},
		{
			name:   "bare name",
			cinema: cineamo.Item{"name": "Scala"},
			want:   "Scala",
		},
		{
			name:   "missing name",
			cinema: cineamo.Item{"city": "Hamburg"},
			want:   "Unknown  [Hamburg]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCinemaEntry(tt.cinema))
		})
	}
}

func TestFormatMovieEntry(t *testing.T) {
	tests := []struct {
		name  string
		movie cineamo.Item
		want  string
	}{
		{
			name:  "runtime and release date",
			movie: cineamo.Item{"title": "Heat", "runtime": float64(170), "releaseDate": "1995-12-15T00:00:00+00:00"},
			want:  "Heat  [170 min, 1995-12-15]",
		},
		{
			name:  "release date only",
			movie: cineamo.Item{"title": "Alien", "releaseDate": "1979-05-25"},
			want:  "Alien  [1979-05-25]",
		},
		{
			name:  "bare title",
			movie: cineamo.Item{"title": "Stalker"},
			want:  "Stalker",
		},
		{
			name:  "missing title",
			movie: cineamo.Item{},
			want:  "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMovieEntry(tt.movie))
		})
	}
}

func TestFormatShowtimeEntry(t *testing.T) {
	showing := cineamo.Item{
		"name":               "Dune: Part Two",
		"startDatetime":      "2026-09-01T20:15:00+00:00",
		"language":           "de",
		"isOriginalLanguage": false,
	}
	assert.Equal(t, "20:15  Dune: Part Two  [de]", FormatShowtimeEntry(showing))

	showing["isOriginalLanguage"] = true
	assert.Equal(t, "20:15  Dune: Part Two  [OV]", FormatShowtimeEntry(showing))
}

func TestFormatRuntime(t *testing.T) {
	assert.Equal(t, "2h 33min (153 min)", FormatRuntime(153))
	assert.Equal(t, "45min", FormatRuntime(45))
	assert.Empty(t, FormatRuntime(0))
	assert.Empty(t, FormatRuntime(-10))
}

func TestFormatGenres(t *testing.T) {
	movie := cineamo.Item{
		"genres": []any{
			map[string]any{"id": float64(18), "name": "Drama"},
			map[string]any{"id": float64(53), "name": "Thriller"},
			"not-a-genre",
		},
	}
	assert.Equal(t, "Drama, Thriller", FormatGenres(movie))

	assert.Empty(t, FormatGenres(cineamo.Item{}))
	assert.Empty(t, FormatGenres(cineamo.Item{"genres": "Drama"}))
}

func TestMatchShowingsToMovie(t *testing.T) {
	showings := []cineamo.Item{
		{"name": "Dune: Part Two", "cineamoMovieId": "693134"},
		{"name": "Dune: Part Two (OV)", "cineamoMovieId": "693134"},
		{"name": "Oppenheimer", "cineamoMovieId": "872585"},
	}

	t.Run("matches by cineamo id", func(t *testing.T) {
		matched := MatchShowingsToMovie(showings, "693134", "ignored")
		require.Len(t, matched, 2)
		assert.Equal(t, "Dune: Part Two", matched[0].Str("name"))
	})

	t.Run("falls back to title match", func(t *testing.T) {
		matched := MatchShowingsToMovie(showings, "", "dune")
		require.Len(t, matched, 2)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, MatchShowingsToMovie(showings, "999", ""))
		assert.Empty(t, MatchShowingsToMovie(showings, "", "barbie"))
	})
}

func TestUpcomingDates(t *testing.T) {
	dates := UpcomingDates(7)
	require.Len(t, dates, 7)

	today := time.Now().UTC()
	assert.Equal(t, today.Format("2006-01-02"), dates[0].Format("2006-01-02"))
	for i := 1; i < len(dates); i++ {
		assert.Equal(t, dates[i-1].AddDate(0, 0, 1).Format("2006-01-02"), dates[i].Format("2006-01-02"))
	}
}
