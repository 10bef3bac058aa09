package cineamo

import (
	"context"
	"iter"
	"net/url"
	"strconv"
)

// StreamAll walks every page of a paginated collection, lazily yielding each
// item in strict page order. The next page is fetched only once the items of
// the current one have been consumed, so breaking out of the loop stops all
// further requests; that is how callers cap a walk at N items.
//
// The walk starts at page 1 on every call and ends exactly when a page
// carries no next link. An error ends the walk at that point; items already
// yielded stand.
func (c *Client) StreamAll(ctx context.Context, path string, perPage int, params url.Values) iter.Seq2[Item, error] {
	if perPage <= 0 {
		perPage = c.perPage
	}

	return func(yield func(Item, error) bool) {
		page := 1
		for {
			p, err := c.ListPage(ctx, path, withPaging(params, page, perPage))
			if err != nil {
				yield(nil, err)
				return
			}

			for _, item := range p.Items {
				if !yield(item, nil) {
					return
				}
			}

			if !p.HasNext() {
				return
			}
			page++
		}
	}
}

// Collect drains a stream into a slice, stopping after limit items when
// limit > 0. The first error aborts the walk and is returned alongside the
// items gathered so far.
func Collect(seq iter.Seq2[Item, error], limit int) ([]Item, error) {
	var items []Item
	for item, err := range seq {
		if err != nil {
			return items, err
		}
		items = append(items, item)
		if limit > 0 && len(items) >= limit {
			break
		}
	}
	return items, nil
}

// withPaging copies params and sets the page and per_page parameters. The
// caller's map is never mutated.
func withPaging(params url.Values, page, perPage int) url.Values {
	merged := url.Values{}
	for key, values := range params {
		merged[key] = append([]string(nil), values...)
	}
	merged.Set("page", strconv.Itoa(page))
	merged.Set("per_page", strconv.Itoa(perPage))
	return merged
}
