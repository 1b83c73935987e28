// Package pkg provides the core libraries for Wikireader.
//
// # Overview
//
// Wikireader turns Wikipedia into two products for a reader app: article
// markup that can be embedded outside Wikipedia, and a monthly newsletter
// edition assembled from Wikimedia sources. The pkg directory is organized
// into three areas:
//
//  1. [article], [edition] - Domain pipelines
//  2. [integrations] - External API clients (Wikipedia REST/Action/Metrics,
//     Commons)
//  3. [cache], [config], [errors], [httputil], [observability], [wiki] -
//     Shared infrastructure
//
// # Architecture
//
// Article flow:
//
//	REST page/html/{title}
//	         ↓
//	    [article] Transform (strip, relocate styles, rewrite links, fold sections)
//	         ↓
//	    body markup (or Markdown)
//
// Edition flow:
//
//	pageviews/top ─┐
//	pageimages ────┤
//	Commons POTD ──┼→ [edition] Builder (concurrent, failure-isolated)
//	blog feed ─────┤          ↓
//	question bank ─┘     Edition (JSON/YAML)
//
// Every upstream response passes through [integrations.Client], which
// applies the per-host rate limit, retries transient failures and caches
// responses in a [cache.Cache] (file, Redis or none).
//
// # Quick Start
//
//	cfg := config.Default()
//	base := integrations.NewClient(cache.NewNullCache(), "wikipedia:en:", 0,
//	    integrations.UserAgentHeaders(cfg.UserAgent))
//	wp := wikipedia.NewClient(base, wikipedia.DefaultEndpoints(cfg.Lang))
//
//	svc := article.NewService(wp, article.OptionsFromConfig(cfg), log.Default())
//	markup, err := svc.Fetch(ctx, "AC/DC", false)
//
// # Testing
//
//	go test ./...                        # All tests
//	go test ./pkg/edition/...            # Specific package
//
// [article]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/article
// [edition]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/edition
// [integrations]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/integrations
// [integrations.Client]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/integrations#Client
// [cache]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/cache
// [cache.Cache]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/cache#Cache
// [config]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/observability
// [wiki]: https://pkg.go.dev/github.com/matzehuels/wikireader/pkg/wiki
package pkg
