package cineamo

import (
	"net/url"
	"sort"
	"strconv"
	"time"
)

// ShowingsParams builds the /showings query for one cinema and one calendar
// day: midnight UTC to midnight of the next day, RFC3339 with a Z suffix as
// the API expects.
func ShowingsParams(cinemaID int, day time.Time) url.Values {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	params := url.Values{}
	params.Set("cinemaIds[]", strconv.Itoa(cinemaID))
	params.Set("startDatetime", start.Format("2006-01-02T15:04:05Z"))
	params.Set("endDatetime", end.Format("2006-01-02T15:04:05Z"))
	return params
}

// SortShowingsByStart orders showings chronologically by startDatetime.
// The ISO timestamps sort correctly as strings.
func SortShowingsByStart(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Str("startDatetime") < items[j].Str("startDatetime")
	})
}

// ShowingTime extracts the local clock time (HH:MM) from a showing's
// startDatetime, or "" when the field is missing or malformed.
func ShowingTime(item Item) string {
	raw := item.Str("startDatetime")
	if raw == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return ""
	}
	return t.Format("15:04")
}
