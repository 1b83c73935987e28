// Package httputil provides HTTP utilities shared by the Wikimedia API
// clients.
//
// # Overview
//
//   - [Retry]: automatic retry with exponential backoff
//   - [HostLimiter]: per-host request pacing
//
// # Retry
//
// [Retry] re-runs an operation only when it fails with a [RetryableError].
// The integrations client wraps transport failures and 5xx responses this
// way; 4xx responses fail immediately.
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    return fetch(ctx)
//	})
//
// # Rate limiting
//
// Wikimedia asks API clients to keep request rates modest. [HostLimiter]
// keeps one token bucket per upstream host so that a burst of thumbnail
// batches against en.wikipedia.org does not starve requests to
// commons.wikimedia.org.
package httputil
