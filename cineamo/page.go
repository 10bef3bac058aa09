package cineamo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Item is a single resource object returned by the API. Responses are
// dynamically shaped, so fields are accessed defensively with typed getters
// that fall back to zero values when a key is missing or of the wrong type.
type Item map[string]any

// Str returns the string value for key, or "" if absent or not a string.
func (it Item) Str(key string) string {
	s, _ := it[key].(string)
	return s
}

// Int returns the integer value for key, or 0 if absent or not numeric.
// JSON numbers decode as float64, so both representations are accepted.
func (it Item) Int(key string) int {
	switch v := it[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// Float returns the float value for key, or 0 if absent or not numeric.
func (it Item) Float(key string) float64 {
	switch v := it[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return 0
}

// Bool returns the boolean value for key, or false if absent or not a bool.
func (it Item) Bool(key string) bool {
	b, _ := it[key].(bool)
	return b
}

// Has reports whether key is present on the item.
func (it Item) Has(key string) bool {
	_, ok := it[key]
	return ok
}

// Page is the result of fetching one page of a paginated collection.
// It is built fresh per response and never cached.
type Page struct {
	// Items holds the resources of this page: the first array-valued entry
	// found under _embedded, in the order the server returned them.
	Items []Item

	// TotalItems is the collection-wide resource count, nil when the
	// server omits _total_items.
	TotalItems *int

	// PageNumber is the 1-based index of this page, nil when omitted.
	PageNumber *int

	// PageCount is the total number of pages, nil when omitted.
	PageCount *int

	// NextURL is the href of the next page from _links.next, or "" on the
	// last page. It is the sole termination signal for a walk; PageCount
	// is informational only.
	NextURL string
}

// HasNext reports whether the server advertised a further page.
func (p *Page) HasNext() bool {
	return p.NextURL != ""
}

// pageEnvelope maps the HAL-JSON pagination wrapper. _embedded stays raw so
// its entries can be scanned in encoded order.
type pageEnvelope struct {
	Embedded json.RawMessage `json:"_embedded"`
	Links    struct {
		Next *struct {
			Href string `json:"href"`
		} `json:"next"`
	} `json:"_links"`
	Page       *int `json:"_page"`
	PageCount  *int `json:"_page_count"`
	TotalItems *int `json:"_total_items"`
}

// decodePage parses a HAL-JSON response body into a Page. Missing pagination
// fields degrade to nil/empty; a body that is not a JSON object is an error.
func decodePage(body []byte) (*Page, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// null and other non-object top levels unmarshal into the
		// envelope without error, so reject them up front.
		return nil, fmt.Errorf("response body is not a JSON object")
	}

	var env pageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}

	items, err := firstEmbeddedArray(env.Embedded)
	if err != nil {
		return nil, err
	}

	page := &Page{
		Items:      items,
		TotalItems: env.TotalItems,
		PageNumber: env.Page,
		PageCount:  env.PageCount,
	}
	if env.Links.Next != nil {
		page.NextURL = env.Links.Next.Href
	}
	return page, nil
}

// firstEmbeddedArray scans the _embedded object in encoded order and decodes
// the first array value it encounters. Non-array entries and anything after
// the first array are ignored. A missing or non-object _embedded yields nil.
func firstEmbeddedArray(embedded json.RawMessage) ([]Item, error) {
	if len(embedded) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(embedded))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok != json.Delim('{') {
		return nil, nil
	}

	for dec.More() {
		if _, err := dec.Token(); err != nil {
			return nil, err
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}

		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) == 0 || trimmed[0] != '[' {
			continue
		}

		var items []Item
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("embedded collection is not an array of objects: %w", err)
		}
		return items, nil
	}

	return nil, nil
}
