// Package integrations provides HTTP clients for the public Wikimedia APIs.
//
// # Overview
//
// Each upstream has its own subpackage:
//
//   - [wikipedia]: rendered article HTML, top pageviews, page thumbnails,
//     OpenSearch and the styles-bundle URL
//   - [commons]: template image lists and image info on Wikimedia Commons
//
// # Shared Infrastructure
//
// The [Client] type provides the HTTP plumbing every subpackage uses:
//
//   - identification headers (User-Agent and Api-User-Agent)
//   - response caching through a [cache.Cache] backend
//   - retry with backoff for transport failures, 429 and 5xx responses
//   - per-host rate limiting
//
// Non-success responses surface as [*StatusError], which unwraps to
// [ErrNotFound] or [ErrNetwork]; use [Status] to recover the HTTP code.
//
// [wikipedia]: github.com/matzehuels/wikireader/pkg/integrations/wikipedia
// [commons]: github.com/matzehuels/wikireader/pkg/integrations/commons
// [cache.Cache]: github.com/matzehuels/wikireader/pkg/cache.Cache
package integrations
