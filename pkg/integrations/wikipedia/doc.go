// Package wikipedia provides an HTTP client for one Wikipedia language
// edition.
//
// # Overview
//
// The client covers the endpoints the reader needs:
//
//   - [Client.ArticleHTML]: Parsoid-rendered article markup from the REST API
//   - [Client.TopPageviews]: the monthly most-viewed ranking from the
//     Wikimedia metrics API
//   - [Client.Thumbnails]: page images for up to [MaxTitles] titles in one
//     Action API query
//   - [Client.Search]: OpenSearch title suggestions
//   - [StylesURL]: the ResourceLoader URL serving skin stylesheets
//
// # Usage
//
//	base := integrations.NewClient(backend, "wikipedia:en:", time.Hour, integrations.UserAgentHeaders(ua))
//	wp := wikipedia.NewClient(base, wikipedia.DefaultEndpoints("en"))
//
//	html, err := wp.ArticleHTML(ctx, "Albert Einstein", false)
//
// Responses are cached through the shared client; pass refresh=true to
// bypass the cache.
package wikipedia
