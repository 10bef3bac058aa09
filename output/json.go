package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

// ListEnvelope is the JSON shape emitted for collection output.
type ListEnvelope struct {
	Items      []cineamo.Item `json:"items"`
	Page       *int           `json:"page,omitempty"`
	TotalItems *int           `json:"total_items,omitempty"`
	Count      int            `json:"count"`
}

// PrintListJSON writes a collection as indented JSON.
func PrintListJSON(w io.Writer, items []cineamo.Item, page, totalItems *int) error {
	if items == nil {
		items = []cineamo.Item{}
	}
	env := ListEnvelope{
		Items:      items,
		Page:       page,
		TotalItems: totalItems,
		Count:      len(items),
	}
	return printJSON(w, env)
}

// PrintJSON writes any value as indented JSON.
func PrintJSON(w io.Writer, v any) error {
	return printJSON(w, v)
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
