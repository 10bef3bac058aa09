// Package cineamo provides a client for the public Cineamo cinema API.
//
// The API speaks HAL-JSON: collections live under _embedded, navigation
// links under _links, and pagination metadata in _page, _page_count and
// _total_items. This package translates that convention into a uniform
// Page value and a lazy all-pages iterator.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := cineamo.NewClient(cineamo.DefaultBaseURL, logger,
//		cineamo.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// One page.
//	page, err := client.ListPage(ctx, "/cinemas", url.Values{"city": {"Berlin"}})
//
//	// All pages, lazily. Break early to stop fetching.
//	for item, err := range client.StreamAll(ctx, "/cinemas", 50, nil) {
//		if err != nil {
//			return err
//		}
//		fmt.Println(item.Str("name"))
//	}
//
// # Error Handling
//
// Three error types cover every failure mode, none of which is retried by
// the client:
//
//   - ConnectionError: transport failure before a response was obtained
//   - StatusError: a non-2xx response, carrying the status code
//   - ParseError: a body that is not JSON of the expected shape
//
// StatusError has classification helpers:
//
//	var statusErr *cineamo.StatusError
//	if errors.As(err, &statusErr) && statusErr.IsNotFound() {
//		// handle 404
//	}
package cineamo
